package fixed

import (
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// Elem is the set of element types a fixed-length value may hold. None of
// them carries a pointer, so values can be copied element by element and
// handed to foreign code as plain memory.
type Elem interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// WriteBytes encodes b as a CBOR byte string whose header declares len(b).
func WriteBytes(w io.Writer, b []byte) error {
	return cbg.WriteByteArray(w, b)
}

// ReadBytes decodes a CBOR byte string into dst. The declared length must be
// exactly len(dst). dst is only written once the whole value has been read.
func ReadBytes(r io.Reader, dst []byte) (err error) {
	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return xerrors.Errorf("reading cbor header: %w", err)
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajByteString {
		return xerrors.Errorf("expected cbor byte string, got major type %d: %w", maj, ErrUnexpectedMajor)
	}
	if extra != uint64(len(dst)) {
		return LengthError{Expected: len(dst), Actual: extra}
	}

	buf := make([]byte, len(dst))
	if _, err := io.ReadFull(cr, buf); err != nil {
		return err
	}
	copy(dst, buf)
	return nil
}

// WriteArray encodes s as a CBOR array of len(s) unsigned integers, in
// index order.
func WriteArray[E Elem](w io.Writer, s []E) error {
	cw := cbg.NewCborWriter(w)

	if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(len(s))); err != nil {
		return err
	}
	for i, v := range s {
		if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(v)); err != nil {
			return xerrors.Errorf("writing element %d: %w", i, err)
		}
	}
	return nil
}

// ReadArray decodes a CBOR array of unsigned integers into dst. The declared
// element count must be exactly len(dst) and every element must fit in E.
// dst is only written once every element has been decoded.
func ReadArray[E Elem](r io.Reader, dst []E) error {
	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return xerrors.Errorf("reading cbor header: %w", err)
	}

	if maj != cbg.MajArray {
		return xerrors.Errorf("expected cbor array, got major type %d: %w", maj, ErrUnexpectedMajor)
	}
	if extra != uint64(len(dst)) {
		return LengthError{Expected: len(dst), Actual: extra}
	}

	limit := uint64(^E(0))
	buf := make([]E, len(dst))
	for i := range buf {
		maj, val, err := cr.ReadHeader()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return xerrors.Errorf("reading element %d: %w", i, err)
		}
		if maj != cbg.MajUnsignedInt {
			return xerrors.Errorf("element %d: expected unsigned int, got major type %d: %w", i, maj, ErrUnexpectedMajor)
		}
		if val > limit {
			return xerrors.Errorf("element %d: value %d overflows element type", i, val)
		}
		buf[i] = E(val)
	}
	copy(dst, buf)
	return nil
}
