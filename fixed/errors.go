package fixed

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is matched (errors.Is) by every length mismatch reported
// while decoding a fixed-length value.
var ErrInvalidLength = errors.New("invalid length")

// ErrUnexpectedMajor is returned when a CBOR header carries a major type
// other than the one a fixed-length value is encoded as.
var ErrUnexpectedMajor = errors.New("unexpected cbor major type")

// LengthError reports a declared length that differs from the fixed length
// of the destination.
type LengthError struct {
	Expected int
	Actual   uint64
}

func (le LengthError) Error() string {
	return fmt.Sprintf("invalid length: %d (actual) != %d (expected)", le.Actual, le.Expected)
}

func (le LengthError) Is(err error) bool {
	return err == ErrInvalidLength
}

// CheckLen returns a LengthError unless actual equals expected.
func CheckLen(expected, actual int) error {
	if actual != expected {
		return LengthError{Expected: expected, Actual: uint64(actual)}
	}
	return nil
}
