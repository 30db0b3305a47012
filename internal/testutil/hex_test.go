package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexSlice(t *testing.T) {
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, HexSlice(t, "deadbeef"))
	assert.Empty(t, HexSlice(t, ""))
}
