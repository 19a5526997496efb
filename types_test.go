package uidebug_test

import (
	"fmt"
	"image/color"

	"github.com/go-theft-auto/uidebug/gfx"
)

type mode int

const (
	modeOff mode = iota
	modeOn
	modeAuto
)

func (m mode) String() string {
	switch m {
	case modeOff:
		return "off"
	case modeOn:
		return "on"
	case modeAuto:
		return "auto"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (mode) Values() []fmt.Stringer {
	return []fmt.Stringer{modeOff, modeOn, modeAuto}
}

type point struct {
	X, Y int
}

type base struct {
	ID   int
	note string
}

// sample exercises every built-in editor.
type sample struct {
	base

	Count  int
	Ratio  float64
	On     bool
	Tint   color.RGBA
	Pos    gfx.Vec2
	Mode   mode
	Title  string
	Items  []string
	Target *point
	Max    int `inspect:"const"`
	cache  []byte `inspect:"-"`
	secret int
}

type other struct {
	Speed float32
}

type empty struct{}

// tuning is reached through an interface, so the browser sees a copy whose
// unexported fields cannot be read.
type tuning struct {
	on    bool
	level mode
	pos   gfx.Vec2
}

type holder struct {
	Inner any
}

func newSample() *sample {
	return &sample{
		base:   base{ID: 1, note: "n"},
		Count:  7,
		Ratio:  0.25,
		Tint:   color.RGBA{R: 255, G: 128, A: 255},
		Pos:    gfx.Vec2{X: 1.5, Y: -2},
		Mode:   modeOff,
		Title:  "hello",
		Items:  []string{"a", "b"},
		Target: &point{X: 1, Y: 2},
		Max:    3,
		secret: 42,
	}
}
