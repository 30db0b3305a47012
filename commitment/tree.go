package commitment

import (
	"crypto/sha256"
	"math/bits"

	"github.com/filecoin-project/go-state-types/abi"
	xerrors "golang.org/x/xerrors"
)

// MaxLevel is the highest tree level ZeroForLevel answers for.
const MaxLevel = 63

var zeroPieces = func() [MaxLevel + 1]Piece {
	var zs [MaxLevel + 1]Piece
	for i := 1; i <= MaxLevel; i++ {
		zs[i] = Parent(&zs[i-1], &zs[i-1])
	}
	return zs
}()

// Parent returns the tree node above left and right: sha256 over both
// children with the two most significant bits of the digest cleared.
func Parent(left, right *Piece) Piece {
	toHash := make([]byte, 2*PieceLen)
	copy(toHash, left[:])
	copy(toHash[PieceLen:], right[:])

	digest := sha256.Sum256(toHash)
	digest[PieceLen-1] &= 0b00111111
	return Piece(digest)
}

// ZeroForLevel returns the commitment of 32<<lvl zero bytes. It panics if
// lvl is outside [0, MaxLevel].
func ZeroForLevel(lvl int) Piece {
	return zeroPieces[lvl]
}

// ZeroForSize returns the commitment of a zero piece of the given padded size.
func ZeroForSize(size abi.PaddedPieceSize) (Piece, error) {
	if err := size.Validate(); err != nil {
		return Piece{}, xerrors.Errorf("zero piece: %w", err)
	}
	lvl := bits.TrailingZeros64(uint64(size) / PieceLen)
	if lvl > MaxLevel {
		return Piece{}, xerrors.Errorf("zero commitments for size %d are not supported", size)
	}
	return ZeroForLevel(lvl), nil
}
