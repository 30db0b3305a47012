// Package testutil holds helpers for building test fixtures.
package testutil

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// HexSlice decodes s, failing the test if it is not valid hex.
func HexSlice(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err, "decoding hex fixture")
	return b
}
