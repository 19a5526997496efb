package uidebug

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// Enum is implemented by types with a closed set of named constants.
// Values lists every constant; each must have the implementing type.
type Enum interface {
	String() string
	Values() []fmt.Stringer
}

// EditorContext carries what an editor factory needs to bind one field.
type EditorContext struct {
	// Owner returns the object holding the field, or nil when it is absent.
	Owner func() any
	Field Field
	// Locked, when set and returning true, makes the editor read-only.
	Locked   func() bool
	Bundle   Bundle
	Registry *Registry
}

func (c *EditorContext) locked() bool {
	return c.Locked != nil && c.Locked()
}

func (c *EditorContext) text(key string) string {
	if c.Bundle == nil {
		return englishMessages[key]
	}
	return c.Bundle.Get(key)
}

// with returns a copy of c bound to another owner and field.
func (c *EditorContext) with(owner func() any, f Field) *EditorContext {
	sub := *c
	sub.Owner = owner
	sub.Field = f
	return &sub
}

// EditorFactory builds the editor widget for the field described by ctx.
type EditorFactory func(ctx *EditorContext) scene.Node

type registryEntry struct {
	typ     reflect.Type
	factory EditorFactory
}

// Registry maps field types to editor factories.
//
// Lookup tries an exact type match first, then the first registered type the
// field type is assignable to, in registration order, then the fallback.
type Registry struct {
	entries  []registryEntry
	fallback EditorFactory
}

// NewRegistry creates a registry with the built-in editors.
func NewRegistry() *Registry {
	r := &Registry{fallback: FallbackEditor}

	RegisterEditor[string](r, TextEditor(StringConverter()))
	RegisterEditor[bool](r, BoolEditor)

	RegisterEditor[int](r, TextEditor(IntConverter[int]()))
	RegisterEditor[int8](r, TextEditor(IntConverter[int8]()))
	RegisterEditor[int16](r, TextEditor(IntConverter[int16]()))
	RegisterEditor[int32](r, TextEditor(IntConverter[int32]()))
	RegisterEditor[int64](r, TextEditor(IntConverter[int64]()))
	RegisterEditor[uint](r, TextEditor(IntConverter[uint]()))
	RegisterEditor[uint8](r, TextEditor(IntConverter[uint8]()))
	RegisterEditor[uint16](r, TextEditor(IntConverter[uint16]()))
	RegisterEditor[uint32](r, TextEditor(IntConverter[uint32]()))
	RegisterEditor[uint64](r, TextEditor(IntConverter[uint64]()))
	RegisterEditor[float32](r, TextEditor(FloatConverter[float32]()))
	RegisterEditor[float64](r, TextEditor(FloatConverter[float64]()))

	RegisterEditor[color.RGBA](r, TextEditor(ColorConverter()))
	RegisterEditor[gfx.Vec2](r, Vec2Editor)
	RegisterEditor[Enum](r, EnumEditor)
	return r
}

// Register maps t to f. Registering an existing type replaces its factory
// in place, keeping its position in the lookup order.
func (r *Registry) Register(t reflect.Type, f EditorFactory) {
	for i := range r.entries {
		if r.entries[i].typ == t {
			r.entries[i].factory = f
			return
		}
	}
	r.entries = append(r.entries, registryEntry{typ: t, factory: f})
}

// RegisterEditor maps T to f.
func RegisterEditor[T any](r *Registry, f EditorFactory) {
	r.Register(reflect.TypeFor[T](), f)
}

// SetFallback replaces the factory used when nothing matches.
func (r *Registry) SetFallback(f EditorFactory) {
	if f != nil {
		r.fallback = f
	}
}

// Lookup returns the factory for t.
func (r *Registry) Lookup(t reflect.Type) EditorFactory {
	if t == nil {
		return r.fallback
	}
	for _, e := range r.entries {
		if e.typ == t {
			return e.factory
		}
	}
	for _, e := range r.entries {
		if t.AssignableTo(e.typ) {
			return e.factory
		}
	}
	return r.fallback
}

// Types lists the registered types in lookup order.
func (r *Registry) Types() []reflect.Type {
	types := make([]reflect.Type, len(r.entries))
	for i, e := range r.entries {
		types[i] = e.typ
	}
	return types
}

// Build creates the editor for ctx.Field. Constant fields always get the
// read-only fallback display.
func (r *Registry) Build(ctx *EditorContext) scene.Node {
	if ctx.Registry == nil {
		ctx.Registry = r
	}
	if ctx.Field.Const {
		return FallbackEditor(ctx)
	}
	return r.Lookup(ctx.Field.Type)(ctx)
}
