// Package gfx holds the geometry, color and draw-list primitives shared by the
// scene tree, the inspector overlays and the OpenGL backend.
package gfx

import "image/color"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite    uint32 = 0xFFFFFFFF
	ColorBlack    uint32 = 0xFF000000
	ColorRed      uint32 = 0xFF0000FF
	ColorGreen    uint32 = 0xFF00FF00
	ColorBlue     uint32 = 0xFFFF0000
	ColorYellow   uint32 = 0xFF00FFFF
	ColorTeal     uint32 = 0xFF808000
	ColorGray     uint32 = 0xFF808080
	ColorDarkGray uint32 = 0xFF404040
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// Pack converts a standard library color into the packed vertex format.
func Pack(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Unpack is the inverse of Pack.
func Unpack(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c), G: uint8(c >> 8), B: uint8(c >> 16), A: uint8(c >> 24)}
}

// WithAlpha replaces the alpha channel of a packed color. alpha is 0..1.
func WithAlpha(c uint32, alpha float32) uint32 {
	a := uint8(clampf(alpha, 0, 1) * 255)
	return c&0x00FFFFFF | uint32(a)<<24
}

// Lerp blends two packed colors, t in 0..1.
func Lerp(from, to uint32, t float32) uint32 {
	t = clampf(t, 0, 1)
	mix := func(shift uint) uint32 {
		a := float32((from >> shift) & 0xFF)
		b := float32((to >> shift) & 0xFF)
		return uint32(a+(b-a)*t) & 0xFF << shift
	}
	return mix(0) | mix(8) | mix(16) | mix(24)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
