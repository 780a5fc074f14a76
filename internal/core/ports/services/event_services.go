package services

// Auth event names and outcomes reported to an EventRecorder.
const (
	EventRegister = "register"
	EventLogin    = "login"
	EventLogout   = "logout"

	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// EventRecorder receives business events for metrics.
type EventRecorder interface {
	AuthEvent(event, outcome string)
	EntryCreated(withAttachment bool)
	StorageError()
}

// NoopEventRecorder discards every event.
type NoopEventRecorder struct{}

func (NoopEventRecorder) AuthEvent(string, string) {}
func (NoopEventRecorder) EntryCreated(bool)        {}
func (NoopEventRecorder) StorageError()            {}
