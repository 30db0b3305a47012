package commitment

import (
	"io"

	commp "github.com/filecoin-project/go-fil-commp-hashhash"
	"github.com/filecoin-project/go-state-types/abi"
	xerrors "golang.org/x/xerrors"
)

// Compute reads r to the end and returns its piece commitment together with
// the padded size of the piece. r must yield at least
// commp.MinPiecePayload bytes.
func Compute(r io.Reader) (Piece, abi.PaddedPieceSize, error) {
	var cp commp.Calc
	if _, err := io.Copy(&cp, r); err != nil {
		return Piece{}, 0, xerrors.Errorf("reading piece: %w", err)
	}

	raw, size, err := cp.Digest()
	if err != nil {
		return Piece{}, 0, xerrors.Errorf("computing piece commitment: %w", err)
	}

	var p Piece
	if err := p.UnmarshalBinary(raw); err != nil {
		return Piece{}, 0, xerrors.Errorf("piece commitment digest: %w", err)
	}
	return p, abi.PaddedPieceSize(size), nil
}
