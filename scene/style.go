package scene

import "github.com/go-theft-auto/uidebug/gfx"

// Spacing constants shared by the built-in widgets.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
	SpaceLG float32 = 12
)

// Style defines the visual appearance of the built-in widgets.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Panels
	PanelColor       uint32
	PanelBorderColor uint32

	// Buttons
	ButtonColor         uint32
	ButtonActiveColor   uint32
	ButtonCheckedColor  uint32
	ButtonDisabledColor uint32

	// Input
	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	CursorColor         uint32

	// Sizing
	Font          gfx.Font
	ButtonPadding float32
	InputPadding  float32
	InputWidth    float32
	BorderSize    float32
}

// DefaultStyle returns the dark style used by the inspector.
func DefaultStyle() *Style {
	return &Style{
		TextColor:         gfx.ColorWhite,
		TextDisabledColor: gfx.ColorGray,

		PanelColor:       gfx.RGBA(20, 20, 20, 220),
		PanelBorderColor: gfx.RGBA(80, 80, 80, 255),

		ButtonColor:         gfx.RGBA(50, 50, 50, 255),
		ButtonActiveColor:   gfx.RGBA(90, 90, 90, 255),
		ButtonCheckedColor:  gfx.RGBA(50, 100, 150, 255),
		ButtonDisabledColor: gfx.RGBA(30, 30, 30, 255),

		InputBgColor:        gfx.RGBA(30, 30, 30, 255),
		InputFocusedBgColor: gfx.RGBA(40, 40, 50, 255),
		InputBorderColor:    gfx.RGBA(100, 100, 100, 255),
		CursorColor:         gfx.ColorWhite,

		Font:          gfx.Font{CharWidth: 8, CharHeight: 8, Scale: 1},
		ButtonPadding: 6,
		InputPadding:  4,
		InputWidth:    120,
		BorderSize:    1,
	}
}

// LineHeight is the height of one line of text at the style's font.
func (s *Style) LineHeight() float32 {
	return s.Font.CharHeight * s.Font.Scale
}
