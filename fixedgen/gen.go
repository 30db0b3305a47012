package fixedgen

import (
	"bytes"
	"go/format"
	"go/token"
	"io"
	"os"
	"text/template"

	xerrors "golang.org/x/xerrors"
)

const header = `// Code generated by github.com/filecoin-project/go-fixedbytes/fixedgen. DO NOT EDIT.

package {{.}}

import (
	"io"

	"github.com/filecoin-project/go-fixedbytes/fixed"
	cbg "github.com/whyrusleeping/cbor-gen"
)
`

const typeTmpl = `
// {{.Doc}}
type {{.Name}} [{{.Len}}]{{.Elem}}

// {{.Name}}Len is the number of elements in a {{.Name}}.
const {{.Name}}Len = {{.Len}}

var _ cbg.CBORMarshaler = (*{{.Name}})(nil)
var _ cbg.CBORUnmarshaler = (*{{.Name}})(nil)

// {{.Name}}FromSlice copies s into a new {{.Name}}.
// It panics if len(s) != {{.Name}}Len.
func {{.Name}}FromSlice(s []{{.Elem}}) {{.Name}} {
	if len(s) != {{.Name}}Len {
		panic(fixed.LengthError{Expected: {{.Name}}Len, Actual: uint64(len(s))})
	}
	var v {{.Name}}
	copy(v[:], s)
	return v
}

// Slice returns a view of all elements of v.
// The view aliases v and is valid for as long as v is.
func (v *{{.Name}}) Slice() []{{.Elem}} {
	return v[:]
}

// SliceRange returns a view of v[start:end]. It panics unless
// 0 <= start <= end <= {{.Name}}Len.
func (v *{{.Name}}) SliceRange(start, end int) []{{.Elem}} {
	return v[start:end:end]
}

// SliceTo returns a view of the first n elements of v.
func (v *{{.Name}}) SliceTo(n int) []{{.Elem}} {
	return v[:n:n]
}

// SliceFrom returns a view of v starting at element n.
func (v *{{.Name}}) SliceFrom(n int) []{{.Elem}} {
	return v[n:]
}

// Ptr returns the address of the first element for passing to foreign code
// that reads {{.Name}}Len elements. The callee must not write through it,
// and it must not be used after v is released.
func (v *{{.Name}}) Ptr() *{{.Elem}} {
	return &v[0]
}

// MutPtr returns the address of the first element for foreign code that
// writes {{.Name}}Len elements. The caller must hold exclusive access to v
// for the duration of the call.
func (v *{{.Name}}) MutPtr() *{{.Elem}} {
	return &v[0]
}

// Len returns {{.Name}}Len.
func (v *{{.Name}}) Len() int {
	return {{.Name}}Len
}

// Equal reports whether v and o hold the same elements.
func (v *{{.Name}}) Equal(o *{{.Name}}) bool {
	return *v == *o
}

// Clone returns a copy of v that shares no storage with it.
func (v *{{.Name}}) Clone() {{.Name}} {
	var c {{.Name}}
	copy(c[:], v[:])
	return c
}

func (v *{{.Name}}) MarshalCBOR(w io.Writer) error {
	if v == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
{{- if .IsByte}}
	return fixed.WriteBytes(w, v[:])
{{- else}}
	return fixed.WriteArray(w, v[:])
{{- end}}
}

func (v *{{.Name}}) UnmarshalCBOR(r io.Reader) error {
{{- if .IsByte}}
	return fixed.ReadBytes(r, v[:])
{{- else}}
	return fixed.ReadArray(r, v[:])
{{- end}}
}
{{- if .IsByte}}

func (v *{{.Name}}) MarshalBinary() ([]byte, error) {
	b := make([]byte, {{.Name}}Len)
	copy(b, v[:])
	return b, nil
}

// UnmarshalBinary sets v from exactly {{.Name}}Len bytes.
func (v *{{.Name}}) UnmarshalBinary(b []byte) error {
	if err := fixed.CheckLen({{.Name}}Len, len(b)); err != nil {
		return err
	}
	copy(v[:], b)
	return nil
}

// Wipe zeroes v in place.
func (v *{{.Name}}) Wipe() {
	fixed.Wipe(v[:])
}
{{- end}}
`

var (
	headerTemplate = template.Must(template.New("header").Parse(header))
	typeTemplate   = template.Must(template.New("type").Parse(typeTmpl))
)

// Generate writes a Go source file declaring the given types in package pkg.
// Every Spec is validated before anything is written to w.
func Generate(w io.Writer, pkg string, specs ...Spec) error {
	src, err := render(pkg, specs)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// WriteFile generates the given types into the file at path. The file is
// left untouched if validation fails.
func WriteFile(path, pkg string, specs ...Spec) error {
	src, err := render(pkg, specs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return xerrors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func render(pkg string, specs []Spec) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, xerrors.Errorf("invalid package name %q", pkg)
	}
	types, err := validate(specs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, pkg); err != nil {
		return nil, err
	}
	for _, td := range types {
		if err := typeTemplate.Execute(&buf, td); err != nil {
			return nil, xerrors.Errorf("rendering %s: %w", td.Name, err)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}
