package commitment

import (
	"bytes"

	commcid "github.com/filecoin-project/go-fil-commcid"
	"github.com/filecoin-project/go-fixedbytes/fixed"
	cid "github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"
)

// cidv1, fil-commitment-unsealed, sha2-256-trunc254-padded, 32 byte digest
var cidPieceHeader = []byte{0x1, 0x81, 0xe2, 0x3, 0x92, 0x20, 0x20}

// FromCID extracts the piece commitment carried by c.
func FromCID(c cid.Cid) (Piece, error) {
	return fromCIDBytes(c.Bytes())
}

func fromCIDBytes(cb []byte) (Piece, error) {
	if err := fixed.CheckLen(PieceLen+len(cidPieceHeader), len(cb)); err != nil {
		return Piece{}, xerrors.Errorf("wrong length of CID: %w", err)
	}

	header, rest := cb[:len(cidPieceHeader)], cb[len(cidPieceHeader):]
	if !bytes.Equal(cidPieceHeader, header) {
		return Piece{}, xerrors.Errorf("wrong content of CID header: %x", header)
	}
	return PieceFromSlice(rest), nil
}

// CID returns the piece CID carrying v.
func (v *Piece) CID() (cid.Cid, error) {
	return commcid.PieceCommitmentV1ToCID(v.Slice())
}
