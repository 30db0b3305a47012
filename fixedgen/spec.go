package fixedgen

import (
	"errors"
	"go/token"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"
	xerrors "golang.org/x/xerrors"
)

var (
	// ErrOwnsResources rejects element types that hold pointers or other
	// references; those cannot be duplicated by a plain element copy.
	ErrOwnsResources = errors.New("element type owns resources")
	// ErrUnsupportedElem rejects anything other than unnamed uint8, uint16,
	// uint32 or uint64 elements.
	ErrUnsupportedElem = errors.New("unsupported element type")
	// ErrBadName is returned for a type name that is not an exported identifier.
	ErrBadName = errors.New("name is not an exported identifier")
	// ErrBadLength is returned for a length of zero or less.
	ErrBadLength = errors.New("length must be positive")
	// ErrDuplicateName is returned when two specs share a type name.
	ErrDuplicateName = errors.New("duplicate type name")
)

// Spec describes one fixed-length type: Name is the Go type name, Elem a
// value of the element type (e.g. byte(0)) and Len the element count.
type Spec struct {
	Name string
	Elem any
	Len  int
	// Doc replaces the default type comment when set.
	Doc string
}

type typeData struct {
	Name   string
	Elem   string
	Len    int
	Doc    string
	IsByte bool
}

var elemNames = map[reflect.Kind]string{
	reflect.Uint8:  "byte",
	reflect.Uint16: "uint16",
	reflect.Uint32: "uint32",
	reflect.Uint64: "uint64",
}

// ElemByName returns a value of the element type with the given name.
func ElemByName(name string) (any, error) {
	switch name {
	case "byte", "uint8":
		return byte(0), nil
	case "uint16":
		return uint16(0), nil
	case "uint32":
		return uint32(0), nil
	case "uint64":
		return uint64(0), nil
	}
	return nil, xerrors.Errorf("%q: %w", name, ErrUnsupportedElem)
}

func (s Spec) typeData() (typeData, error) {
	var merr *multierror.Error
	if !token.IsIdentifier(s.Name) || !token.IsExported(s.Name) {
		merr = multierror.Append(merr, ErrBadName)
	}
	if s.Len <= 0 {
		merr = multierror.Append(merr, xerrors.Errorf("%d: %w", s.Len, ErrBadLength))
	}
	elem, err := elemName(s.Elem)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return typeData{}, err
	}

	doc := s.Doc
	if doc == "" {
		doc = s.Name + " is a fixed-length array of " + elem + "."
	}
	doc = strings.ReplaceAll(strings.TrimSpace(doc), "\n", "\n// ")
	return typeData{
		Name:   s.Name,
		Elem:   elem,
		Len:    s.Len,
		Doc:    doc,
		IsByte: elem == "byte",
	}, nil
}

func elemName(v any) (string, error) {
	if v == nil {
		return "", xerrors.Errorf("nil element: %w", ErrUnsupportedElem)
	}
	t := reflect.TypeOf(v)
	if hasPointers(t) {
		return "", xerrors.Errorf("%s: %w", t, ErrOwnsResources)
	}
	name, ok := elemNames[t.Kind()]
	if !ok || t.PkgPath() != "" {
		return "", xerrors.Errorf("%s: %w", t, ErrUnsupportedElem)
	}
	return name, nil
}

// hasPointers reports whether values of t reference memory outside
// themselves.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.Map,
		reflect.String, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func validate(specs []Spec) ([]typeData, error) {
	var merr *multierror.Error
	seen := make(map[string]struct{}, len(specs))
	types := make([]typeData, 0, len(specs))
	for i, s := range specs {
		td, err := s.typeData()
		if err != nil {
			merr = multierror.Append(merr, xerrors.Errorf("spec %d (%q): %w", i, s.Name, err))
			continue
		}
		if _, ok := seen[td.Name]; ok {
			merr = multierror.Append(merr, xerrors.Errorf("spec %d (%q): %w", i, s.Name, ErrDuplicateName))
			continue
		}
		seen[td.Name] = struct{}{}
		types = append(types, td)
	}
	if len(specs) == 0 {
		merr = multierror.Append(merr, errors.New("no types to generate"))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	slices.SortFunc(types, func(a, b typeData) bool {
		return a.Name < b.Name
	})
	return types, nil
}
