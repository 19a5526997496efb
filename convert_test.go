package uidebug_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/gfx"
)

func roundTrip[T any](t *testing.T, conv uidebug.Converter[T], v T, text string) {
	t.Helper()
	assert.Equal(t, text, conv.Format(v))
	got, err := conv.Parse(conv.Format(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestConverters_RoundTrip(t *testing.T) {
	roundTrip(t, uidebug.IntConverter[int](), 42, "42")
	roundTrip(t, uidebug.IntConverter[int8](), -128, "-128")
	roundTrip(t, uidebug.IntConverter[uint16](), 65535, "65535")
	roundTrip(t, uidebug.FloatConverter[float32](), 1.5, "1.5")
	roundTrip(t, uidebug.FloatConverter[float64](), 0.1, "0.1")
	roundTrip(t, uidebug.BoolConverter(), true, "true")
	roundTrip(t, uidebug.StringConverter(), "a b", "a b")
	roundTrip(t, uidebug.ColorConverter(), color.RGBA{R: 255, G: 128, B: 0, A: 192}, "ff8000c0")
	roundTrip(t, uidebug.Vec2Converter(), gfx.Vec2{X: 1.5, Y: -2}, "1.5, -2")
}

func TestConverters_LenientInput(t *testing.T) {
	v, err := uidebug.Vec2Converter().Parse("1.5, -2.0")
	require.NoError(t, err)
	assert.Equal(t, gfx.Vec2{X: 1.5, Y: -2}, v)

	n, err := uidebug.IntConverter[int]().Parse(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	c, err := uidebug.ColorConverter().Parse("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, c)
}

func TestConverters_Reject(t *testing.T) {
	for name, parse := range map[string]func() error{
		"int text":      func() error { _, err := uidebug.IntConverter[int]().Parse("abc"); return err },
		"int8 overflow": func() error { _, err := uidebug.IntConverter[int8]().Parse("200"); return err },
		"uint negative": func() error { _, err := uidebug.IntConverter[uint]().Parse("-1"); return err },
		"float":         func() error { _, err := uidebug.FloatConverter[float32]().Parse("1..2"); return err },
		"bool":          func() error { _, err := uidebug.BoolConverter().Parse("maybe"); return err },
		"color length":  func() error { _, err := uidebug.ColorConverter().Parse("fff"); return err },
		"color digits":  func() error { _, err := uidebug.ColorConverter().Parse("gg0000"); return err },
		"vec2 comma":    func() error { _, err := uidebug.Vec2Converter().Parse("1.5"); return err },
		"vec2 number":   func() error { _, err := uidebug.Vec2Converter().Parse("1, y"); return err },
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, parse(), uidebug.ErrParse)
		})
	}
}
