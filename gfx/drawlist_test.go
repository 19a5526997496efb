package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawList_BatchesByTextureAndClip(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(Rect{X: 1, Y: 2, W: 3, H: 4}, ColorRed)
	dl.PushClipRect(Rect{X: 0, Y: 0, W: 10, H: 10})
	dl.AddText(Vec2{}, "ab", ColorWhite, Font{TextureID: 9, CharWidth: 8, CharHeight: 8, Scale: 1})
	dl.PopClipRect()
	dl.Finalize()

	assert.Len(t, dl.VtxBuffer, 12)
	assert.Len(t, dl.IdxBuffer, 18)
	require.Len(t, dl.CmdBuffer, 2, "empty commands are dropped")
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(9), dl.CmdBuffer[1].TextureID)
	assert.Equal(t, [4]float32{0, 0, 10, 10}, dl.CmdBuffer[1].ClipRect)
	assert.Equal(t, uint32(4), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, uint16(0), dl.IdxBuffer[6], "indices are relative to the command")
}

func TestDrawList_SplitsBeforeIndexOverflow(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	const quads = 20000
	for i := range quads {
		dl.AddRect(Rect{X: float32(i % 800), W: 1, H: 1}, ColorGreen)
	}
	dl.Finalize()

	require.Len(t, dl.VtxBuffer, quads*4)
	require.Len(t, dl.CmdBuffer, 2)
	first, second := dl.CmdBuffer[0], dl.CmdBuffer[1]
	assert.Equal(t, uint32(16384*6), first.ElemCount)
	assert.Equal(t, uint32(1<<16), second.VertexOffset)
	assert.Equal(t, uint32((quads-16384)*6), second.ElemCount)
	assert.Equal(t, uint16(0), dl.IdxBuffer[second.IndexOffset])

	for _, cmd := range dl.CmdBuffer {
		for _, idx := range dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount] {
			require.Less(t, int(cmd.VertexOffset)+int(idx), len(dl.VtxBuffer))
		}
	}
	assert.Equal(t, uint16(0xFFFF), dl.IdxBuffer[first.ElemCount-1], "first command fills the 16-bit range")
}

func TestDrawList_TransparentIsSkipped(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.AddRect(Rect{W: 5, H: 5}, WithAlpha(ColorRed, 0))
	dl.AddText(Vec2{}, "x", 0, Font{Scale: 1})
	assert.Empty(t, dl.VtxBuffer)
}

func TestDrawList_TextFallbackGlyph(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	f := Font{CharWidth: 8, CharHeight: 8, Scale: 2}
	dl.AddText(Vec2{X: 4}, "►", ColorWhite, f)
	require.Len(t, dl.VtxBuffer, 4)

	col, row := glyphCell('>')
	assert.InDelta(t, float32(col)/AtlasCols, dl.VtxBuffer[0].TexCoord[0], 1e-6)
	assert.InDelta(t, float32(row)/AtlasRows, dl.VtxBuffer[0].TexCoord[1], 1e-6)
	assert.Equal(t, float32(20), dl.VtxBuffer[1].Pos[0])
}

func TestFontAtlas(t *testing.T) {
	data := FontAtlas()
	require.Len(t, data, AtlasWidth*AtlasHeight)

	// Top row of 'A' is 0x18: pixels 3 and 4 of the cell.
	col, row := glyphCell('A')
	base := row*GlyphSize*AtlasWidth + col*GlyphSize
	assert.Equal(t, []byte{0, 0, 0, 255, 255, 0, 0, 0}, data[base:base+GlyphSize])

	col, row = glyphCell(' ')
	base = row*GlyphSize*AtlasWidth + col*GlyphSize
	assert.Equal(t, make([]byte, GlyphSize), data[base:base+GlyphSize])
}

func TestColors(t *testing.T) {
	assert.Equal(t, ColorRed, RGBA(255, 0, 0, 255))
	assert.Equal(t, uint32(0x7F0000FF), WithAlpha(ColorRed, 0.5))
	assert.Equal(t, ColorTeal, Pack(Unpack(ColorTeal)))
}
