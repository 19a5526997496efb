package uidebug

import (
	"reflect"
	"slices"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// Service is a behavior unit driven once per frame by a Scheduler.
// Services are identified by their dynamic type: at most one service of a
// given kind is active at a time.
type Service interface {
	Start()
	Stop()
	Update()
	Draw(dl *gfx.DrawList)
}

// BaseService implements Service with no-ops. Embed it to override only the
// callbacks a service needs.
type BaseService struct{}

func (BaseService) Start()             {}
func (BaseService) Stop()              {}
func (BaseService) Update()            {}
func (BaseService) Draw(*gfx.DrawList) {}

// KindOf returns the kind a service is registered under.
func KindOf(s Service) reflect.Type {
	return reflect.TypeOf(s)
}

// Scheduler runs the update and draw callbacks of its active services.
//
// Update and Draw iterate over a snapshot of the active set, so services may
// register or unregister others while being called. A service removed during
// a pass is not called again; one added during a pass runs from the next.
// Panics raised by a service are not recovered.
type Scheduler struct {
	services []Service
	detach   []func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register starts s and adds it to the active set. It returns false without
// starting s if a service of the same kind is already active.
func (sc *Scheduler) Register(s Service) bool {
	kind := KindOf(s)
	if sc.IsActive(kind) {
		return false
	}
	sc.services = append(sc.services, s)
	s.Start()
	logger.Debug().Stringer("kind", kind).Msg("service registered")
	return true
}

// Unregister stops and removes every active service of the given kind and
// returns how many were removed.
func (sc *Scheduler) Unregister(kind reflect.Type) int {
	var removed []Service
	sc.services = slices.DeleteFunc(sc.services, func(s Service) bool {
		if KindOf(s) == kind {
			removed = append(removed, s)
			return true
		}
		return false
	})
	for _, s := range removed {
		s.Stop()
	}
	if len(removed) > 0 {
		logger.Debug().Stringer("kind", kind).Int("count", len(removed)).Msg("service unregistered")
	}
	return len(removed)
}

// IsActive reports whether a service of the given kind is registered.
func (sc *Scheduler) IsActive(kind reflect.Type) bool {
	return slices.ContainsFunc(sc.services, func(s Service) bool { return KindOf(s) == kind })
}

// Len returns the number of active services.
func (sc *Scheduler) Len() int { return len(sc.services) }

// Update calls Update on every active service.
func (sc *Scheduler) Update() {
	for _, s := range slices.Clone(sc.services) {
		if sc.active(s) {
			s.Update()
		}
	}
}

// Draw calls Draw on every active service.
func (sc *Scheduler) Draw(dl *gfx.DrawList) {
	for _, s := range slices.Clone(sc.services) {
		if sc.active(s) {
			s.Draw(dl)
		}
	}
}

func (sc *Scheduler) active(s Service) bool {
	return slices.Contains(sc.services, s)
}

// Attach drives the scheduler from the stage: Update after the tree has
// acted and Draw after the tree has been drawn.
func (sc *Scheduler) Attach(stage *scene.Stage) {
	sc.Detach()
	sc.detach = append(sc.detach, stage.OnUpdate(sc.Update), stage.OnDrawEnd(sc.Draw))
}

// Detach removes the stage hooks installed by Attach.
func (sc *Scheduler) Detach() {
	for _, fn := range sc.detach {
		fn()
	}
	sc.detach = nil
}

// IsActive reports whether a service of kind S is registered.
func IsActive[S Service](sc *Scheduler) bool {
	return sc.IsActive(reflect.TypeFor[S]())
}

// Unregister stops every active service of kind S.
func Unregister[S Service](sc *Scheduler) int {
	return sc.Unregister(reflect.TypeFor[S]())
}
