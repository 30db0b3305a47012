package types

import (
	"bytes"
	"sync"
	"testing"
	"unsafe"

	"github.com/filecoin-project/go-fixedbytes/fixed"
	"github.com/filecoin-project/go-fixedbytes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/crypto/curve25519"
)

// secp256k1 test vector secret key
const secretKeyHex = "e6dd32f8761625f105c39a39f19370b3521d845a12456d60ce44debd0a362641"

func sampleSecretKey(t *testing.T) SecretKey {
	return SecretKeyFromSlice(testutil.HexSlice(t, secretKeyHex))
}

func TestSecretKeyRoundTrip(t *testing.T) {
	fixture := testutil.HexSlice(t, secretKeyHex)
	sk := SecretKeyFromSlice(fixture)

	var buf bytes.Buffer
	require.NoError(t, sk.MarshalCBOR(&buf))

	var decoded SecretKey
	require.NoError(t, decoded.UnmarshalCBOR(&buf))
	assert.Equal(t, fixture, decoded.Slice())
	assert.Equal(t, 32, decoded.Len())
	assert.True(t, decoded.Equal(&sk))
}

func TestDecodeRejectsOffByOne(t *testing.T) {
	for _, n := range []int{SignatureLen - 1, SignatureLen + 1, 0} {
		var buf bytes.Buffer
		require.NoError(t, fixed.WriteBytes(&buf, bytes.Repeat([]byte{0x11}, n)))

		var sig Signature
		err := sig.UnmarshalCBOR(&buf)
		assert.ErrorIs(t, err, fixed.ErrInvalidLength, "length %d", n)
		assert.Equal(t, Signature{}, sig)
	}
}

func TestUnmarshalCBORNull(t *testing.T) {
	var sk *SecretKey
	var buf bytes.Buffer
	require.NoError(t, sk.MarshalCBOR(&buf))
	assert.Equal(t, cbg.CborNull, buf.Bytes())

	var out SecretKey
	assert.ErrorIs(t, out.UnmarshalCBOR(&buf), fixed.ErrUnexpectedMajor)
}

func TestLen(t *testing.T) {
	sk := sampleSecretKey(t)
	var zero SecretKey
	clone := sk.Clone()
	assert.Equal(t, SecretKeyLen, sk.Len())
	assert.Equal(t, SecretKeyLen, zero.Len())
	assert.Equal(t, SecretKeyLen, clone.Len())

	var pk PublicKey
	var upk UncompressedPublicKey
	var rsig RecoverableSignature
	var fe FieldElement
	var sc Scalar
	assert.Equal(t, 33, pk.Len())
	assert.Equal(t, 65, upk.Len())
	assert.Equal(t, 65, rsig.Len())
	assert.Equal(t, 10, fe.Len())
	assert.Equal(t, 4, sc.Len())
}

func TestEquality(t *testing.T) {
	a := sampleSecretKey(t)
	b := sampleSecretKey(t)
	var c SecretKey
	copy(c[:], testutil.HexSlice(t, secretKeyHex))

	assert.True(t, a.Equal(&a))
	assert.True(t, a.Equal(&b))
	assert.True(t, b.Equal(&a))
	assert.True(t, b.Equal(&c))
	assert.True(t, a.Equal(&c))

	d := a.Clone()
	d[31] ^= 0x01
	assert.False(t, a.Equal(&d))
	assert.False(t, d.Equal(&a))
}

func TestCloneDoesNotAlias(t *testing.T) {
	orig := sampleSecretKey(t)
	dup := orig.Clone()
	require.True(t, dup.Equal(&orig))
	assert.NotSame(t, orig.Ptr(), dup.Ptr())

	// write through the mutable pointer as foreign code would
	foreign := unsafe.Slice(dup.MutPtr(), dup.Len())
	for i := range foreign {
		foreign[i] = 0xff
	}
	assert.Equal(t, testutil.HexSlice(t, secretKeyHex), orig.Slice())
	assert.Equal(t, bytes.Repeat([]byte{0xff}, SecretKeyLen), dup.Slice())

	orig[0] = 0
	assert.Equal(t, byte(0xff), dup[0])
}

func TestPtrCoversValue(t *testing.T) {
	sig := SignatureFromSlice(bytes.Repeat([]byte{0xab}, SignatureLen))
	view := unsafe.Slice(sig.Ptr(), sig.Len())
	assert.Equal(t, sig.Slice(), view)
	assert.Same(t, &sig[0], sig.Ptr())
	assert.Same(t, sig.Ptr(), sig.MutPtr())

	fe := FieldElementFromSlice([]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	limbs := unsafe.Slice(fe.Ptr(), fe.Len())
	assert.Equal(t, uint32(10), limbs[9])
}

func TestViews(t *testing.T) {
	sk := sampleSecretKey(t)
	fixture := testutil.HexSlice(t, secretKeyHex)

	assert.Equal(t, fixture, sk.Slice())
	assert.Equal(t, fixture[4:9], sk.SliceRange(4, 9))
	assert.Equal(t, fixture[:5], sk.SliceTo(5))
	assert.Equal(t, fixture[5:], sk.SliceFrom(5))
	assert.Empty(t, sk.SliceRange(2, 2))
	assert.Empty(t, sk.SliceTo(0))
	assert.Empty(t, sk.SliceFrom(SecretKeyLen))
	assert.Len(t, sk.SliceTo(SecretKeyLen), SecretKeyLen)

	// views alias the value
	sk.Slice()[0] = 0x42
	assert.Equal(t, byte(0x42), sk[0])
}

func TestBoundedViewCannotGrow(t *testing.T) {
	sk := sampleSecretKey(t)
	want := sk.Clone()

	head := sk.SliceTo(4)
	assert.Equal(t, 4, cap(head))
	_ = append(head, 0, 0, 0)
	mid := sk.SliceRange(2, 6)
	assert.Equal(t, 4, cap(mid))
	_ = append(mid, 0)

	assert.True(t, sk.Equal(&want))
}

func TestViewBoundsFaults(t *testing.T) {
	sk := sampleSecretKey(t)
	n := sk.Len()

	assert.Panics(t, func() { sk.SliceRange(n+1, n+1) })
	assert.Panics(t, func() { sk.SliceRange(3, 2) })
	assert.Panics(t, func() { sk.SliceRange(-1, 2) })
	assert.Panics(t, func() { sk.SliceTo(n + 1) })
	assert.Panics(t, func() { sk.SliceFrom(n + 1) })
	assert.NotPanics(t, func() { sk.SliceRange(n, n) })
}

func TestFromSliceWrongLength(t *testing.T) {
	assert.Panics(t, func() { SecretKeyFromSlice(make([]byte, 31)) })
	assert.Panics(t, func() { SecretKeyFromSlice(make([]byte, 33)) })
	assert.PanicsWithValue(t, fixed.LengthError{Expected: 4, Actual: 3}, func() {
		ScalarFromSlice([]uint64{1, 2, 3})
	})
}

func TestBinary(t *testing.T) {
	msg := MessageFromSlice(bytes.Repeat([]byte{0x07}, MessageLen))
	b, err := msg.MarshalBinary()
	require.NoError(t, err)
	b[0] = 0
	assert.Equal(t, byte(0x07), msg[0], "MarshalBinary must copy")

	var out Message
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, b, out.Slice())

	assert.ErrorIs(t, out.UnmarshalBinary(b[1:]), fixed.ErrInvalidLength)
	assert.ErrorIs(t, out.UnmarshalBinary(append(b, 0)), fixed.ErrInvalidLength)
	assert.Equal(t, b, out.Slice())
}

func TestWipe(t *testing.T) {
	ss := SharedSecretFromSlice(bytes.Repeat([]byte{0x5a}, SharedSecretLen))
	ss.Wipe()
	assert.Equal(t, SharedSecret{}, ss)
}

func TestLimbTypesRoundTrip(t *testing.T) {
	fe := FieldElementFromSlice([]uint32{0x3ffffff, 1, 2, 3, 4, 5, 6, 7, 8, 0x3fffff})
	var buf bytes.Buffer
	require.NoError(t, fe.MarshalCBOR(&buf))
	var fe2 FieldElement
	require.NoError(t, fe2.UnmarshalCBOR(&buf))
	assert.True(t, fe.Equal(&fe2))

	sc := Scalar{^uint64(0), 0, 1 << 63, 42}
	buf.Reset()
	require.NoError(t, sc.MarshalCBOR(&buf))
	var sc2 Scalar
	require.NoError(t, sc2.UnmarshalCBOR(&buf))
	assert.Equal(t, sc, sc2)

	// a Scalar is four limbs, not ten
	buf.Reset()
	require.NoError(t, fe.MarshalCBOR(&buf))
	assert.ErrorIs(t, sc2.UnmarshalCBOR(&buf), fixed.ErrInvalidLength)
	assert.Equal(t, sc, sc2)
}

func TestX25519OverArrayPointers(t *testing.T) {
	sk := sampleSecretKey(t)

	var pub SharedSecret
	curve25519.ScalarBaseMult((*[32]byte)(&pub), (*[32]byte)(&sk))

	want, err := curve25519.X25519(sk.Slice(), curve25519.Basepoint)
	require.NoError(t, err)
	assert.Equal(t, want, pub.Slice())
}

func FuzzSignatureUnmarshalCBOR(f *testing.F) {
	var buf bytes.Buffer
	sig := SignatureFromSlice(bytes.Repeat([]byte{0x01}, SignatureLen))
	require.NoError(f, sig.MarshalCBOR(&buf))
	f.Add(buf.Bytes())
	f.Add(buf.Bytes()[:SignatureLen])

	f.Fuzz(func(t *testing.T, b []byte) {
		var s Signature
		if err := s.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
			if s != (Signature{}) {
				t.Fatal("partial value after failed decode")
			}
			return
		}
		var out bytes.Buffer
		if err := s.MarshalCBOR(&out); err != nil {
			t.Fatal(err)
		}
		if out.Len() != 2+SignatureLen {
			t.Fatalf("unexpected encoded length %d", out.Len())
		}
	})
}

func TestConcurrentReaders(t *testing.T) {
	sk := sampleSecretKey(t)
	want := testutil.HexSlice(t, secretKeyHex)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			other := sk.Clone()
			assert.True(t, sk.Equal(&other))
			assert.Equal(t, want, sk.Slice())
			assert.Equal(t, want[:8], unsafe.Slice(sk.Ptr(), 8))
		}()
	}
	wg.Wait()
}
