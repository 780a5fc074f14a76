package domain

// Attachment is an uploaded file waiting to be stored alongside a new entry.
type Attachment struct {
	OriginalName string
	Content      []byte
}

// IsEmpty reports whether there is nothing to store.
func (a *Attachment) IsEmpty() bool {
	return a == nil || len(a.Content) == 0
}
