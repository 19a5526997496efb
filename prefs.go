package uidebug

const prefsPrefix = "uidebugger."

// Setting keys, as stored in Settings.
const (
	KeyElementDebug      = prefsPrefix + "elementDebug"
	KeyCellDebug         = prefsPrefix + "cellDebug"
	KeyForceElementDebug = prefsPrefix + "forceElementDebug"
	KeyBoundsOpacity     = prefsPrefix + "boundsOpacity"
	KeyBoundsThickness   = prefsPrefix + "boundsThickness"
)

// Ranges and defaults of the numeric preferences.
const (
	DefaultBoundsOpacity   float32 = 0.3
	MinBoundsOpacity       float32 = 1.0 / 256
	MaxBoundsOpacity       float32 = 1
	DefaultBoundsThickness float32 = 2
	MinBoundsThickness     float32 = 0.1
	MaxBoundsThickness     float32 = 10
)

// Prefs exposes the inspector preferences stored in a Settings. Values are
// read through on every call so external changes apply on the next frame.
type Prefs struct {
	s Settings
}

// NewPrefs wraps s. A nil s selects an in-memory store.
func NewPrefs(s Settings) *Prefs {
	if s == nil {
		s = NewViperSettings()
	}
	return &Prefs{s: s}
}

// Settings returns the underlying store.
func (p *Prefs) Settings() Settings { return p.s }

// Overlay toggles.
func (p *Prefs) ElementDebug() bool          { return p.s.Bool(KeyElementDebug, false) }
func (p *Prefs) SetElementDebug(v bool)      { p.s.SetBool(KeyElementDebug, v) }
func (p *Prefs) CellDebug() bool             { return p.s.Bool(KeyCellDebug, false) }
func (p *Prefs) SetCellDebug(v bool)         { p.s.SetBool(KeyCellDebug, v) }
func (p *Prefs) ForceElementDebug() bool     { return p.s.Bool(KeyForceElementDebug, false) }
func (p *Prefs) SetForceElementDebug(v bool) { p.s.SetBool(KeyForceElementDebug, v) }

// BoundsOpacity is the overlay alpha, clamped to its valid range.
func (p *Prefs) BoundsOpacity() float32 {
	return clamp(p.s.Float(KeyBoundsOpacity, DefaultBoundsOpacity), MinBoundsOpacity, MaxBoundsOpacity)
}

// SetBoundsOpacity stores the overlay alpha, clamped to its valid range.
func (p *Prefs) SetBoundsOpacity(v float32) {
	p.s.SetFloat(KeyBoundsOpacity, clamp(v, MinBoundsOpacity, MaxBoundsOpacity))
}

// BoundsThickness is the overlay line width in pixels.
func (p *Prefs) BoundsThickness() float32 {
	return clamp(p.s.Float(KeyBoundsThickness, DefaultBoundsThickness), MinBoundsThickness, MaxBoundsThickness)
}

// SetBoundsThickness stores the overlay line width, clamped to its valid range.
func (p *Prefs) SetBoundsThickness(v float32) {
	p.s.SetFloat(KeyBoundsThickness, clamp(v, MinBoundsThickness, MaxBoundsThickness))
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
