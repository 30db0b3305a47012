package fixedgen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type withPointer struct {
	A uint8
	B *int
}

type plainStruct struct {
	A uint8
	B [2]uint16
}

type namedByte byte

func parseGenerated(t *testing.T, src []byte) *ast.File {
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	return f
}

func methodsOf(f *ast.File, typ string) map[string]bool {
	res := make(map[string]bool)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv == nil {
			continue
		}
		star, ok := fd.Recv.List[0].Type.(*ast.StarExpr)
		if !ok {
			continue
		}
		if id, ok := star.X.(*ast.Ident); ok && id.Name == typ {
			res[fd.Name.Name] = true
		}
	}
	return res
}

func TestGenerateSunshine(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, "keys",
		Spec{Name: "Signature", Elem: byte(0), Len: 64},
		Spec{Name: "Limbs", Elem: uint32(0), Len: 10, Doc: "Limbs holds a field element."},
	)
	require.NoError(t, err)

	src := buf.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by"))
	assert.Contains(t, src, "type Signature [64]byte")
	assert.Contains(t, src, "type Limbs [10]uint32")
	assert.Contains(t, src, "// Limbs holds a field element.")
	assert.Contains(t, src, "fixed.ReadBytes(r, v[:])")
	assert.Contains(t, src, "fixed.ReadArray(r, v[:])")
	// output is sorted by name
	assert.Less(t, strings.Index(src, "type Limbs"), strings.Index(src, "type Signature"))

	f := parseGenerated(t, buf.Bytes())
	assert.Equal(t, "keys", f.Name.Name)

	common := []string{"Slice", "SliceRange", "SliceTo", "SliceFrom", "Ptr", "MutPtr",
		"Len", "Equal", "Clone", "MarshalCBOR", "UnmarshalCBOR"}
	sig := methodsOf(f, "Signature")
	limbs := methodsOf(f, "Limbs")
	for _, m := range common {
		assert.True(t, sig[m], "Signature.%s", m)
		assert.True(t, limbs[m], "Limbs.%s", m)
	}
	for _, m := range []string{"MarshalBinary", "UnmarshalBinary", "Wipe"} {
		assert.True(t, sig[m], "Signature.%s", m)
		assert.False(t, limbs[m], "Limbs.%s", m)
	}
}

func TestGenerateMultilineDoc(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, "keys", Spec{Name: "Key", Elem: byte(0), Len: 32, Doc: "Key is a key.\nIt is secret."})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "// Key is a key.\n// It is secret.\ntype Key [32]byte")
	parseGenerated(t, buf.Bytes())
}

func TestGenerateRejectsResourceOwningElements(t *testing.T) {
	for _, elem := range []any{"", []byte{}, new(int), withPointer{}, map[int]int{}, [2]*int{}} {
		err := Generate(&bytes.Buffer{}, "keys", Spec{Name: "Bad", Elem: elem, Len: 4})
		assert.ErrorIs(t, err, ErrOwnsResources, "%T", elem)
	}
}

func TestGenerateRejectsUnsupportedElements(t *testing.T) {
	for _, elem := range []any{nil, int(0), int8(0), float64(0), plainStruct{}, namedByte(0), [2]byte{}} {
		err := Generate(&bytes.Buffer{}, "keys", Spec{Name: "Bad", Elem: elem, Len: 4})
		assert.ErrorIs(t, err, ErrUnsupportedElem, "%T", elem)
		assert.NotErrorIs(t, err, ErrOwnsResources, "%T", elem)
	}
}

func TestGenerateCollectsAllErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, "keys",
		Spec{Name: "lower", Elem: byte(0), Len: 4},
		Spec{Name: "Zero", Elem: byte(0), Len: 0},
		Spec{Name: "Dup", Elem: byte(0), Len: 4},
		Spec{Name: "Dup", Elem: byte(0), Len: 8},
	)
	assert.ErrorIs(t, err, ErrBadName)
	assert.ErrorIs(t, err, ErrBadLength)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Zero(t, buf.Len())
}

func TestGenerateRejectsEmptyAndBadPackage(t *testing.T) {
	assert.Error(t, Generate(&bytes.Buffer{}, "keys"))
	assert.Error(t, Generate(&bytes.Buffer{}, "not a package", Spec{Name: "K", Elem: byte(0), Len: 1}))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixed_gen.go")
	require.NoError(t, WriteFile(path, "keys", Spec{Name: "Nonce", Elem: byte(0), Len: 24}))

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "type Nonce [24]byte")

	// a failed generation leaves the previous file in place
	assert.Error(t, WriteFile(path, "keys", Spec{Name: "Nonce", Elem: "", Len: 24}))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, again)
}

func TestElemByName(t *testing.T) {
	for name, want := range map[string]any{
		"byte":   byte(0),
		"uint8":  uint8(0),
		"uint16": uint16(0),
		"uint32": uint32(0),
		"uint64": uint64(0),
	} {
		got, err := ElemByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ElemByName("string")
	assert.ErrorIs(t, err, ErrUnsupportedElem)
}
