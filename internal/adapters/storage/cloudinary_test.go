package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromKey(t *testing.T) {
	assert.Equal(t, "u1_20240601T000000.000000001Z_ab12cd34", publicIDFromKey("u1_20240601T000000.000000001Z_ab12cd34.jpg"))
	assert.Equal(t, "noext", publicIDFromKey("noext"))
}

func TestPublicIDFromRef(t *testing.T) {
	id, err := publicIDFromRef("https://res.cloudinary.com/demo/image/upload/v1717000000/journal/u1_stamp_ab12.jpg", "journal")
	require.NoError(t, err)
	assert.Equal(t, "journal/u1_stamp_ab12", id)

	id, err = publicIDFromRef("https://res.cloudinary.com/demo/image/upload/v1/u1_stamp_ab12.png", "")
	require.NoError(t, err)
	assert.Equal(t, "u1_stamp_ab12", id)

	_, err = publicIDFromRef("", "journal")
	assert.Error(t, err)
}

func TestS3ObjectKey(t *testing.T) {
	s := &S3Storage{Bucket: "b", Prefix: "attachments"}
	assert.Equal(t, "attachments/u1_x.jpg", s.objectKey("u1_x.jpg"))

	s.Prefix = ""
	assert.Equal(t, "u1_x.jpg", s.objectKey("u1_x.jpg"))
}
