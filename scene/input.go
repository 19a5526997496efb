package scene

import "github.com/go-theft-auto/uidebug/gfx"

// Key identifies a non-printable key delivered to the focused widget.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyTab
	KeyCopy
	KeyPaste
)

// InputEvent describes a pointer event delivered to a listener.
type InputEvent struct {
	Stage *Stage
	// StagePos is the pointer position in stage coordinates.
	StagePos gfx.Vec2
	// Local is the pointer position relative to the listener's node.
	Local gfx.Vec2
	// Target is the node that was hit, or the capture node.
	Target Node
	// Owner is the node the listener is attached to.
	Owner  Node
	Button int
}

// Listener receives pointer events. A listener that returns true from
// TouchDown receives the following drag and up events.
type Listener interface {
	TouchDown(e *InputEvent) bool
	TouchDragged(e *InputEvent)
	TouchUp(e *InputEvent)
}

// KeyListener is optionally implemented by listeners on the capture node.
type KeyListener interface {
	KeyDown(k Key) bool
}

// Focusable is implemented by widgets that accept keyboard input.
type Focusable interface {
	Node
	FocusGained()
	FocusLost()
	KeyTyped(r rune) bool
	KeyDown(k Key) bool
}

// ListenerFuncs adapts plain functions to Listener. Nil functions are skipped
// and a nil Down accepts the touch.
type ListenerFuncs struct {
	Down    func(e *InputEvent) bool
	Dragged func(e *InputEvent)
	Up      func(e *InputEvent)
	Key     func(k Key) bool
}

func (f ListenerFuncs) TouchDown(e *InputEvent) bool {
	if f.Down == nil {
		return true
	}
	return f.Down(e)
}

func (f ListenerFuncs) TouchDragged(e *InputEvent) {
	if f.Dragged != nil {
		f.Dragged(e)
	}
}

func (f ListenerFuncs) TouchUp(e *InputEvent) {
	if f.Up != nil {
		f.Up(e)
	}
}

func (f ListenerFuncs) KeyDown(k Key) bool {
	if f.Key == nil {
		return false
	}
	return f.Key(k)
}

// OnClick attaches a click handler that fires when a touch starts and ends on n.
func OnClick(n Node, fn func(e *InputEvent)) {
	n.Base().AddListener(ListenerFuncs{
		Up: func(e *InputEvent) {
			b := n.Base()
			if e.Local.X >= 0 && e.Local.X < b.Width && e.Local.Y >= 0 && e.Local.Y < b.Height {
				fn(e)
			}
		},
	})
}
