package uidebug

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Field describes one struct field of an inspected type.
//
// Fields tagged `inspect:"const"` are displayed read-only, and fields
// tagged `inspect:"-"` are not listed at all.
type Field struct {
	Name     string
	Type     reflect.Type
	Declarer reflect.Type // struct type that declares the field
	Const    bool
	Exported bool

	root  reflect.Type // struct type the index path starts from
	index []int
}

// Level is one struct type in an inspected type's embedding chain, together
// with the fields it declares itself.
type Level struct {
	Type   reflect.Type
	Fields []Field
}

// Hierarchy returns the embedding chain of t, innermost embedded struct
// first and t itself last. Embedded struct fields are represented by their
// own level rather than listed as fields. t may be a struct or a pointer to one.
func Hierarchy(t reflect.Type) ([]Level, error) {
	if t == nil {
		return nil, fmt.Errorf("hierarchy of nil type: %w", ErrNotStruct)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("hierarchy of %s: %w", t, ErrNotStruct)
	}
	var levels []Level
	collectLevels(t, t, nil, &levels)
	return levels, nil
}

func collectLevels(root, t reflect.Type, prefix []int, out *[]Level) {
	level := Level{Type: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collectLevels(root, sf.Type, index, out)
			continue
		}
		tag := sf.Tag.Get("inspect")
		if tag == "-" {
			continue
		}
		level.Fields = append(level.Fields, Field{
			Name:     sf.Name,
			Type:     sf.Type,
			Declarer: t,
			Const:    hasTagOption(tag, "const"),
			Exported: sf.IsExported(),
			root:     root,
			index:    index,
		})
	}
	*out = append(*out, level)
}

func hasTagOption(tag, opt string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == opt {
			return true
		}
	}
	return false
}

// FieldByName returns the field named name anywhere in t's hierarchy.
func FieldByName(t reflect.Type, name string) (Field, error) {
	levels, err := Hierarchy(t)
	if err != nil {
		return Field{}, err
	}
	// Outer levels shadow embedded ones.
	for i := len(levels) - 1; i >= 0; i-- {
		for _, f := range levels[i].Fields {
			if f.Name == name {
				return f, nil
			}
		}
	}
	return Field{}, fmt.Errorf("%s has no field %q: %w", t, name, ErrFieldAccess)
}

// MustField is FieldByName for fields known to exist. It panics otherwise.
func MustField(t reflect.Type, name string) Field {
	f, err := FieldByName(t, name)
	if err != nil {
		panic(err)
	}
	return f
}

// TypeName is the field type without its package path.
func (f Field) TypeName() string {
	s := f.Type.String()
	if strings.ContainsAny(s, "(){}") {
		return s
	}
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		// Keep pointer and slice markers: "*scene.Group" -> "*Group".
		prefix := strings.TrimRightFunc(s[:i], func(r rune) bool { return r != '*' && r != ']' })
		return prefix + s[i+1:]
	}
	return s
}

// value resolves the field on owner. Unexported fields of addressable owners
// are made settable through their address.
func (f Field) value(owner any) (fv reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = f.accessError(fmt.Errorf("%v", r))
		}
	}()

	rv := reflect.ValueOf(owner)
	if !rv.IsValid() {
		return reflect.Value{}, ErrOwnerAbsent
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, ErrOwnerAbsent
		}
		rv = rv.Elem()
	}
	if rv.Type() != f.root {
		return reflect.Value{}, f.accessError(fmt.Errorf("owner is %s", rv.Type()))
	}
	fv = rv.FieldByIndex(f.index)
	if !f.Exported && fv.CanAddr() {
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	return fv, nil
}

func (f Field) accessError(cause error) error {
	err := fmt.Errorf("%w: %s.%s: %v", ErrFieldAccess, f.Declarer, f.Name, cause)
	logger.Error().Err(cause).Str("field", f.Name).Stringer("type", f.Declarer).Msg("reflective access failed")
	return err
}

// Get returns the field's current value on owner.
func (f Field) Get(owner any) (any, error) {
	fv, err := f.value(owner)
	if err != nil {
		return nil, err
	}
	if !fv.CanInterface() {
		return nil, f.accessError(fmt.Errorf("unexported field on unaddressable owner"))
	}
	return fv.Interface(), nil
}

// Set assigns v to the field on owner. v must be assignable or convertible
// to the field type; nil assigns the zero value.
func (f Field) Set(owner any, v any) (err error) {
	fv, err := f.value(owner)
	if err != nil {
		return err
	}
	if !fv.CanSet() {
		return f.accessError(fmt.Errorf("field is not settable"))
	}
	defer func() {
		if r := recover(); r != nil {
			err = f.accessError(fmt.Errorf("%v", r))
		}
	}()

	nv := reflect.ValueOf(v)
	switch {
	case !nv.IsValid():
		nv = reflect.Zero(fv.Type())
	case nv.Type().AssignableTo(fv.Type()):
	case nv.Type().ConvertibleTo(fv.Type()):
		nv = nv.Convert(fv.Type())
	default:
		return f.accessError(fmt.Errorf("cannot assign %s to %s", nv.Type(), fv.Type()))
	}
	fv.Set(nv)
	return nil
}

// Pointer returns a pointer to the field inside owner, allowing nested
// editors to write through to it. owner must be a non-nil pointer.
func (f Field) Pointer(owner any) (any, error) {
	fv, err := f.value(owner)
	if err != nil {
		return nil, err
	}
	if !fv.CanAddr() || !fv.Addr().CanInterface() {
		return nil, f.accessError(fmt.Errorf("field is not addressable"))
	}
	return fv.Addr().Interface(), nil
}

// Descend returns the object a "follow this reference" action would browse:
// the pointee of a non-nil pointer or interface, or the address of an
// embedded struct value. It reports false for scalars and nil references.
func (f Field) Descend(owner any) (any, bool) {
	o, ok, _ := f.descend(owner)
	return o, ok
}

func (f Field) descend(owner any) (any, bool, error) {
	fv, err := f.value(owner)
	if err != nil {
		return nil, false, err
	}
	o, ok := descendValue(fv)
	return o, ok, nil
}

func descendValue(fv reflect.Value) (any, bool) {
	switch fv.Kind() {
	case reflect.Interface:
		if fv.IsNil() {
			return nil, false
		}
		return descendValue(fv.Elem())
	case reflect.Pointer:
		if fv.IsNil() || fv.Elem().Kind() != reflect.Struct || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	case reflect.Struct:
		if fv.CanAddr() && fv.Addr().CanInterface() {
			return fv.Addr().Interface(), true
		}
		if fv.CanInterface() {
			return fv.Interface(), true
		}
	}
	return nil, false
}
