package gfx

import (
	"sync"

	"github.com/chewxy/math32"
)

// drawListPool reuses DrawList buffers between frames; the scene and every
// overlay service rebuild their geometry each frame.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Font describes the fixed-cell bitmap font baked into the backend atlas.
type Font struct {
	TextureID  uint32
	CharWidth  float32
	CharHeight float32
	Scale      float32
}

// Measure returns the size of a single line of text.
func (f Font) Measure(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * f.CharWidth * f.Scale, Y: f.CharHeight * f.Scale}
}

// DrawList accumulates draw commands for a frame, batched by texture and clip.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the DrawList while retaining capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips all subsequent primitives to the given rectangle.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// maxCmdVertices is the most vertices one command can address with its
// 16-bit relative indices.
const maxCmdVertices = 1 << 16

func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+4 > maxCmdVertices {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, a, b, c, d)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)
}

// AddRectOutline draws the four edges of a rectangle, inset by thickness.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(from, to Vec2, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := to.X - from.X
	dy := to.Y - from.Y
	inv := float32(1)
	if l := math32.Sqrt(dx*dx + dy*dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.addQuad(
		Vertex{Pos: [2]float32{from.X + nx, from.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{to.X + nx, to.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{to.X - nx, to.Y - ny}, Color: color},
		Vertex{Pos: [2]float32{from.X - nx, from.Y - ny}, Color: color},
	)
}

// AddText draws a single line of text with the bitmap font.
func (dl *DrawList) AddText(pos Vec2, text string, color uint32, font Font) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}

	cw := font.CharWidth * font.Scale
	ch := font.CharHeight * font.Scale

	dl.SetTexture(font.TextureID)
	i := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = asciiFallback(r)
		}
		c, rw := glyphCell(r)
		col, row := float32(c), float32(rw)
		u0, v0 := col/AtlasCols, row/AtlasRows
		u1, v1 := (col+1)/AtlasCols, (row+1)/AtlasRows

		x := pos.X + float32(i)*cw
		dl.addQuad(
			Vertex{Pos: [2]float32{x, pos.Y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{x, pos.Y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		i++
	}
	dl.SetTexture(0)
}

func asciiFallback(r rune) rune {
	switch r {
	case '►', '▶', '→':
		return '>'
	case '◄', '◀', '←':
		return '<'
	case '▼', '↓':
		return 'v'
	case '▲', '↑':
		return '^'
	case '—', '–':
		return '-'
	default:
		return '?'
	}
}

// Finalize closes the last command and drops empty ones.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
