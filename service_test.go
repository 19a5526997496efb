package uidebug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

type countingService struct {
	uidebug.BaseService
	log *[]string
	tag string
}

func (s *countingService) Start()             { *s.log = append(*s.log, s.tag+".start") }
func (s *countingService) Stop()              { *s.log = append(*s.log, s.tag+".stop") }
func (s *countingService) Update()            { *s.log = append(*s.log, s.tag+".update") }
func (s *countingService) Draw(*gfx.DrawList) { *s.log = append(*s.log, s.tag+".draw") }

type otherService struct {
	uidebug.BaseService
	onUpdate func()
}

func (s *otherService) Update() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

func TestScheduler_RegisterIsSingletonPerKind(t *testing.T) {
	var log []string
	sc := uidebug.NewScheduler()

	require.True(t, sc.Register(&countingService{log: &log, tag: "a"}))
	assert.False(t, sc.Register(&countingService{log: &log, tag: "b"}), "same kind must be rejected")
	assert.Equal(t, []string{"a.start"}, log, "rejected service must not start")
	assert.True(t, uidebug.IsActive[*countingService](sc))
	assert.Equal(t, 1, sc.Len())

	require.True(t, sc.Register(&otherService{}))
	assert.Equal(t, 2, sc.Len())
}

func TestScheduler_UnregisterStops(t *testing.T) {
	var log []string
	sc := uidebug.NewScheduler()
	sc.Register(&countingService{log: &log, tag: "a"})

	assert.Equal(t, 1, uidebug.Unregister[*countingService](sc))
	assert.Equal(t, []string{"a.start", "a.stop"}, log)
	assert.False(t, uidebug.IsActive[*countingService](sc))
	assert.Equal(t, 0, uidebug.Unregister[*countingService](sc))
}

func TestScheduler_UpdateBeforeDrawThroughStage(t *testing.T) {
	var log []string
	stage := scene.NewStage(100, 100, nil)
	sc := uidebug.NewScheduler()
	sc.Attach(stage)
	sc.Register(&countingService{log: &log, tag: "a"})

	dl := gfx.AcquireDrawList()
	defer gfx.ReleaseDrawList(dl)
	stage.Act(0.016)
	stage.Draw(dl)
	assert.Equal(t, []string{"a.start", "a.update", "a.draw"}, log)

	sc.Detach()
	log = nil
	stage.Act(0.016)
	stage.Draw(dl)
	assert.Empty(t, log)
}

func TestScheduler_IteratesSnapshot(t *testing.T) {
	var log []string
	sc := uidebug.NewScheduler()
	other := &otherService{}
	other.onUpdate = func() {
		// Removing a service mid-frame must not skip or repeat others.
		uidebug.Unregister[*countingService](sc)
	}
	sc.Register(other)
	sc.Register(&countingService{log: &log, tag: "a"})

	sc.Update()
	assert.Equal(t, []string{"a.start", "a.stop"}, log)
	assert.Equal(t, 1, sc.Len())
}

func TestScheduler_DoesNotRecoverPanics(t *testing.T) {
	sc := uidebug.NewScheduler()
	sc.Register(&otherService{onUpdate: func() { panic("boom") }})
	assert.PanicsWithValue(t, "boom", sc.Update)
}
