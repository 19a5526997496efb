package uidebug

import (
	"fmt"
	"reflect"
)

// Binding is a live link between an editor and one field of an owner that is
// re-resolved through its provider on every access.
//
// The binding remembers the last value it observed or committed. Changed
// compares the current value against it by equality and, for references, by
// Fingerprint, so the owner's own commits are not reported as external changes.
type Binding[T any] struct {
	owner func() any
	field Field
	conv  Converter[T]

	last     T
	lastHash uint64
	seen     bool
}

// NewBinding binds field of whatever owner returns to conv.
func NewBinding[T any](owner func() any, field Field, conv Converter[T]) *Binding[T] {
	return &Binding[T]{owner: owner, field: field, conv: conv}
}

// Field returns the bound field.
func (b *Binding[T]) Field() Field { return b.field }

// Converter returns the binding's converter.
func (b *Binding[T]) Converter() Converter[T] { return b.conv }

// Owner returns the current owner, or false if it is absent.
func (b *Binding[T]) Owner() (any, bool) {
	if b.owner == nil {
		return nil, false
	}
	o := b.owner()
	if o == nil {
		return nil, false
	}
	if rv := reflect.ValueOf(o); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return o, true
}

// Current reads the bound value. It returns ErrOwnerAbsent when the owner
// provider yields nothing.
func (b *Binding[T]) Current() (T, error) {
	var zero T
	o, ok := b.Owner()
	if !ok {
		return zero, ErrOwnerAbsent
	}
	raw, err := b.field.Get(o)
	if err != nil {
		return zero, err
	}
	return convertTo[T](raw)
}

func convertTo[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	if v, ok := raw.(T); ok {
		return v, nil
	}
	want := reflect.TypeFor[T]()
	rv := reflect.ValueOf(raw)
	if rv.Type().ConvertibleTo(want) {
		return rv.Convert(want).Interface().(T), nil
	}
	return zero, fmt.Errorf("%w: %s is not %s", ErrFieldAccess, rv.Type(), want)
}

// Commit writes v to the owner and records it as observed. It is a no-op
// returning ErrOwnerAbsent when there is no owner.
func (b *Binding[T]) Commit(v T) error {
	o, ok := b.Owner()
	if !ok {
		return ErrOwnerAbsent
	}
	if err := b.field.Set(o, v); err != nil {
		return err
	}
	b.observe(v)
	return nil
}

// CommitText parses s and commits the result. On a parse error the owner is
// left untouched and the error wraps ErrParse.
func (b *Binding[T]) CommitText(s string) error {
	if _, ok := b.Owner(); !ok {
		return ErrOwnerAbsent
	}
	v, err := b.conv.Parse(s)
	if err != nil {
		return err
	}
	return b.Commit(v)
}

// Format renders v with the binding's converter.
func (b *Binding[T]) Format(v T) string {
	if b.conv.Format == nil {
		return fmt.Sprint(v)
	}
	return b.conv.Format(v)
}

// Changed polls the owner. It reports true when the value differs from the
// last observed one, including the first poll after creation or Reset.
func (b *Binding[T]) Changed() (T, bool, error) {
	v, err := b.Current()
	if err != nil {
		return v, false, err
	}
	hash := Fingerprint(v)
	changed := !b.seen || !equalValues(v, b.last) || hash != b.lastHash
	if changed {
		b.last, b.lastHash, b.seen = v, hash, true
	}
	return v, changed, nil
}

// Last returns the last observed value.
func (b *Binding[T]) Last() (T, bool) { return b.last, b.seen }

// Reset forgets the last observed value.
func (b *Binding[T]) Reset() {
	var zero T
	b.last, b.lastHash, b.seen = zero, 0, false
}

func (b *Binding[T]) observe(v T) {
	b.last, b.lastHash, b.seen = v, Fingerprint(v), true
}

func equalValues(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return ra.IsValid() == rb.IsValid()
	}
	if ra.Type() != rb.Type() {
		return false
	}
	if ra.Comparable() {
		return ra.Equal(rb)
	}
	return reflect.DeepEqual(a, b)
}
