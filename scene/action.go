package scene

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Interpolation maps linear progress in 0..1 to eased progress.
type Interpolation func(a float32) float32

// Easing curves used by the built-in widgets and the inspector.
var (
	Linear Interpolation = func(a float32) float32 { return a }

	SineIn Interpolation = func(a float32) float32 {
		return 1 - math32.Cos(a*math32.Pi/2)
	}

	SineOut Interpolation = func(a float32) float32 {
		return math32.Sin(a * math32.Pi / 2)
	}

	CircleIn Interpolation = func(a float32) float32 {
		return 1 - math32.Sqrt(1-a*a)
	}

	BounceOut Interpolation = bounceOut
)

// bounceOut is the four-bounce curve with decreasing rebound height.
func bounceOut(a float32) float32 {
	const n, d = 7.5625, 2.75
	switch {
	case a < 1/d:
		return n * a * a
	case a < 2/d:
		a -= 1.5 / d
		return n*a*a + 0.75
	case a < 2.5/d:
		a -= 2.25 / d
		return n*a*a + 0.9375
	default:
		a -= 2.625 / d
		return n*a*a + 0.984375
	}
}

// Action is a timed change applied to an element. Act returns true once the
// action has finished.
type Action interface {
	Act(e *Element, delta float32) bool
}

// temporal drives an action over a fixed duration.
type temporal struct {
	duration float32
	interp   Interpolation
	elapsed  float32
	began    bool
	begin    func(e *Element)
	update   func(e *Element, percent float32)
}

func (t *temporal) Act(e *Element, delta float32) bool {
	if !t.began {
		t.began = true
		if t.begin != nil {
			t.begin(e)
		}
	}
	t.elapsed += delta
	done := t.elapsed >= t.duration
	percent := float32(1)
	if !done {
		percent = t.elapsed / t.duration
		if t.interp != nil {
			percent = t.interp(percent)
		}
	}
	t.update(e, percent)
	return done
}

// ColorTo animates the element color to c.
func ColorTo(c color.RGBA, duration float32, interp Interpolation) Action {
	var start color.RGBA
	return &temporal{
		duration: duration,
		interp:   interp,
		begin:    func(e *Element) { start = e.Color },
		update: func(e *Element, p float32) {
			mix := func(a, b uint8) uint8 { return uint8(float32(a) + (float32(b)-float32(a))*p) }
			e.Color = color.RGBA{
				R: mix(start.R, c.R),
				G: mix(start.G, c.G),
				B: mix(start.B, c.B),
				A: mix(start.A, c.A),
			}
		},
	}
}

// TranslateBy animates the element translation by (dx, dy).
func TranslateBy(dx, dy, duration float32, interp Interpolation) Action {
	var last float32
	return &temporal{
		duration: duration,
		interp:   interp,
		update: func(e *Element, p float32) {
			step := p - last
			last = p
			e.Translation.X += dx * step
			e.Translation.Y += dy * step
		},
	}
}

// Delay waits for duration before finishing.
func Delay(duration float32) Action {
	return &temporal{duration: duration, update: func(*Element, float32) {}}
}

// Run invokes fn once and finishes.
func Run(fn func()) Action {
	return runAction(fn)
}

type runAction func()

func (r runAction) Act(*Element, float32) bool {
	r()
	return true
}

type sequence struct {
	actions []Action
	index   int
}

// Sequence runs actions one after another.
func Sequence(actions ...Action) Action {
	return &sequence{actions: actions}
}

func (s *sequence) Act(e *Element, delta float32) bool {
	for s.index < len(s.actions) {
		if !s.actions[s.index].Act(e, delta) {
			return false
		}
		s.index++
		// Following actions start on the next frame.
		delta = 0
	}
	return true
}

type parallel struct {
	actions []Action
	done    []bool
}

// Parallel runs actions together and finishes when all have finished.
func Parallel(actions ...Action) Action {
	return &parallel{actions: actions, done: make([]bool, len(actions))}
}

func (p *parallel) Act(e *Element, delta float32) bool {
	finished := true
	for i, a := range p.actions {
		if p.done[i] {
			continue
		}
		p.done[i] = a.Act(e, delta)
		finished = finished && p.done[i]
	}
	return finished
}
