package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomHex(t *testing.T) {
	a, err := RandomHex(4)
	require.NoError(t, err)
	b, err := RandomHex(4)
	require.NoError(t, err)

	assert.Len(t, a, 8)
	assert.Regexp(t, `^[0-9a-f]{8}$`, a)
	assert.NotEqual(t, a, b)

	_, err = RandomHex(0)
	assert.Error(t, err)
}
