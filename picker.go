package uidebug

import "github.com/go-theft-auto/uidebug/scene"

// PickState is the state of a Picker.
type PickState int

const (
	PickIdle PickState = iota
	PickAwaiting
	PickArmed
	PickConfirmed
)

var pickStateNames = [...]string{"idle", "awaiting", "armed", "confirmed"}

func (s PickState) String() string {
	if int(s) < len(pickStateNames) {
		return pickStateNames[s]
	}
	return "unknown"
}

// Picker is the two-step pick protocol: a pointer-down on a node arms it, a
// second consecutive pointer-down on the same node confirms it. It knows
// nothing about rendering; callers feed it hit-test results.
type Picker struct {
	state     PickState
	last      scene.Node
	committed scene.Node
}

// State returns the current state.
func (p *Picker) State() PickState { return p.state }

// LastPicked returns the tentative pick, or nil.
func (p *Picker) LastPicked() scene.Node { return p.last }

// Committed returns the node confirmed by the last completed session.
func (p *Picker) Committed() scene.Node { return p.committed }

// Active reports whether a session is open.
func (p *Picker) Active() bool {
	return p.state == PickAwaiting || p.state == PickArmed
}

// Begin opens a session and forgets any previous tentative pick.
func (p *Picker) Begin() {
	p.state = PickAwaiting
	p.last = nil
	p.committed = nil
}

// Down feeds the result of a pointer-down hit test. It returns true when the
// pick is confirmed, in which case Committed holds the node.
func (p *Picker) Down(hit scene.Node) bool {
	if !p.Active() {
		return false
	}
	if hit != nil && hit == p.last {
		p.committed = hit
		p.state = PickConfirmed
		return true
	}
	p.track(hit)
	return false
}

// Drag feeds the node under a dragged pointer. It never confirms.
func (p *Picker) Drag(hit scene.Node) {
	if p.Active() {
		p.track(hit)
	}
}

func (p *Picker) track(hit scene.Node) {
	p.last = hit
	if hit == nil {
		p.state = PickAwaiting
	} else {
		p.state = PickArmed
	}
}

// Finish closes the session, keeping Committed.
func (p *Picker) Finish() {
	p.state = PickIdle
	p.last = nil
}

// Cancel closes the session without a result.
func (p *Picker) Cancel() {
	p.Finish()
	p.committed = nil
}
