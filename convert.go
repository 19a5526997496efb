package uidebug

import (
	"fmt"
	"image/color"
	"reflect"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"

	"github.com/go-theft-auto/uidebug/gfx"
)

// Converter translates between a value and its editable text form. Parse
// must reject malformed input with an error.
type Converter[T any] struct {
	Parse  func(s string) (T, error)
	Format func(v T) string
}

func parseError(s string, t reflect.Type, cause error) error {
	return fmt.Errorf("%w: %q as %s: %v", ErrParse, s, t, cause)
}

// StringConverter passes text through unchanged.
func StringConverter() Converter[string] {
	return Converter[string]{
		Parse:  func(s string) (string, error) { return s, nil },
		Format: func(v string) string { return v },
	}
}

// BoolConverter accepts the forms understood by strconv.ParseBool.
func BoolConverter() Converter[bool] {
	return Converter[bool]{
		Parse: func(s string) (bool, error) {
			v, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return false, parseError(s, reflect.TypeFor[bool](), err)
			}
			return v, nil
		},
		Format: strconv.FormatBool,
	}
}

// IntConverter parses base-10 integers, rejecting values out of range for N.
func IntConverter[N constraints.Integer]() Converter[N] {
	t := reflect.TypeFor[N]()
	bits := t.Bits()
	unsigned := t.Kind() >= reflect.Uint && t.Kind() <= reflect.Uintptr
	return Converter[N]{
		Parse: func(s string) (N, error) {
			s = strings.TrimSpace(s)
			if unsigned {
				v, err := strconv.ParseUint(s, 10, bits)
				if err != nil {
					return 0, parseError(s, t, err)
				}
				return N(v), nil
			}
			v, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return 0, parseError(s, t, err)
			}
			return N(v), nil
		},
		Format: func(v N) string {
			if unsigned {
				return strconv.FormatUint(uint64(v), 10)
			}
			return strconv.FormatInt(int64(v), 10)
		},
	}
}

// FloatConverter parses decimal floats at the precision of F.
func FloatConverter[F constraints.Float]() Converter[F] {
	t := reflect.TypeFor[F]()
	bits := t.Bits()
	return Converter[F]{
		Parse: func(s string) (F, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
			if err != nil {
				return 0, parseError(s, t, err)
			}
			return F(v), nil
		},
		Format: func(v F) string {
			return strconv.FormatFloat(float64(v), 'g', -1, bits)
		},
	}
}

// ColorConverter formats colors as rrggbbaa hex. Parse also accepts a
// leading '#' and the six-digit form, which is fully opaque.
func ColorConverter() Converter[color.RGBA] {
	t := reflect.TypeFor[color.RGBA]()
	return Converter[color.RGBA]{
		Parse: func(s string) (color.RGBA, error) {
			hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
			if len(hex) != 6 && len(hex) != 8 {
				return color.RGBA{}, parseError(s, t, fmt.Errorf("want 6 or 8 hex digits"))
			}
			c, err := colorful.Hex("#" + hex[:6])
			if err != nil {
				return color.RGBA{}, parseError(s, t, err)
			}
			alpha := uint64(255)
			if len(hex) == 8 {
				if alpha, err = strconv.ParseUint(hex[6:], 16, 8); err != nil {
					return color.RGBA{}, parseError(s, t, err)
				}
			}
			r, g, b := c.RGB255()
			return color.RGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
		},
		Format: func(v color.RGBA) string {
			c := colorful.Color{R: float64(v.R) / 255, G: float64(v.G) / 255, B: float64(v.B) / 255}
			return fmt.Sprintf("%s%02x", strings.TrimPrefix(c.Hex(), "#"), v.A)
		},
	}
}

// Vec2Converter formats vectors as "x, y".
func Vec2Converter() Converter[gfx.Vec2] {
	t := reflect.TypeFor[gfx.Vec2]()
	num := FloatConverter[float32]()
	return Converter[gfx.Vec2]{
		Parse: func(s string) (gfx.Vec2, error) {
			xs, ys, ok := strings.Cut(s, ",")
			if !ok {
				return gfx.Vec2{}, parseError(s, t, fmt.Errorf("want \"x, y\""))
			}
			x, err := num.Parse(xs)
			if err != nil {
				return gfx.Vec2{}, parseError(s, t, err)
			}
			y, err := num.Parse(ys)
			if err != nil {
				return gfx.Vec2{}, parseError(s, t, err)
			}
			return gfx.Vec2{X: x, Y: y}, nil
		},
		Format: func(v gfx.Vec2) string {
			return num.Format(v.X) + ", " + num.Format(v.Y)
		},
	}
}
