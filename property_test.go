package uidebug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/scene"
)

func sampleContext(owner func() any, field string) *uidebug.EditorContext {
	return &uidebug.EditorContext{
		Owner:    owner,
		Field:    uidebug.MustField(sampleType, field),
		Registry: uidebug.NewRegistry(),
	}
}

func submit(f *scene.TextField, text string) {
	f.SetText(text)
	f.Submit()
}

func TestPropertyField_CommitsParsedText(t *testing.T) {
	s := newSample()
	p := uidebug.NewPropertyField(sampleContext(func() any { return s }, "Count"), uidebug.IntConverter[int]())
	assert.Equal(t, "7", p.Field.Text)

	submit(p.Field, " 12")
	assert.Equal(t, 12, s.Count)
	assert.Equal(t, "12", p.Field.Text)

	p.Field.Act(0.016)
	assert.False(t, p.Field.HasActions(), "own edit is not flashed as an external change")
}

func TestPropertyField_ParseFailurePreservesValue(t *testing.T) {
	s := newSample()
	p := uidebug.NewPropertyField(sampleContext(func() any { return s }, "Count"), uidebug.IntConverter[int]())

	submit(p.Field, "abc")
	assert.Equal(t, 7, s.Count)
	assert.Equal(t, "7", p.Field.Text)
	assert.True(t, p.Field.HasActions(), "failure cue plays")

	p.Field.Act(0.016)
	assert.Equal(t, "7", p.Field.Text)
	for range 300 {
		p.Field.Act(0.016)
	}
	assert.False(t, p.Field.HasActions())
	assert.InDelta(t, 0, p.Field.Translation.X, 1e-3, "shake returns to rest")
}

func TestPropertyField_ExternalChangeRefreshes(t *testing.T) {
	s := newSample()
	p := uidebug.NewPropertyField(sampleContext(func() any { return s }, "Title"), uidebug.StringConverter())

	s.Title = "changed"
	p.Field.Act(0.016)
	assert.Equal(t, "changed", p.Field.Text)
	assert.True(t, p.Field.HasActions(), "update cue plays")
	assert.Equal(t, s.Title, "changed", "refresh does not write back")
}

func TestPropertyField_OwnerAbsent(t *testing.T) {
	s := newSample()
	var owner *sample
	p := uidebug.NewPropertyField(sampleContext(func() any { return owner }, "Count"), uidebug.IntConverter[int]())
	assert.Equal(t, "N / A", p.Field.Text)
	assert.True(t, p.Field.Disabled)

	submit(p.Field, "5")
	assert.Equal(t, "N / A", p.Field.Text)

	owner = s
	p.Field.Act(0.016)
	assert.Equal(t, "7", p.Field.Text)
	assert.False(t, p.Field.Disabled)
	assert.False(t, p.Field.HasActions(), "reappearing owner is not an update")
}

func TestPropertyField_Locked(t *testing.T) {
	s := newSample()
	locked := true
	ctx := sampleContext(func() any { return s }, "Count")
	ctx.Locked = func() bool { return locked }
	p := uidebug.NewPropertyField(ctx, uidebug.IntConverter[int]())
	assert.True(t, p.Field.Disabled)

	submit(p.Field, "99")
	assert.Equal(t, 7, s.Count)
	assert.Equal(t, "7", p.Field.Text)

	locked = false
	p.Field.Act(0.016)
	assert.False(t, p.Field.Disabled)
}

func TestPropertyField_UnexportedField(t *testing.T) {
	s := newSample()
	p := uidebug.NewPropertyField(sampleContext(func() any { return s }, "secret"), uidebug.IntConverter[int]())
	assert.Equal(t, "42", p.Field.Text)

	submit(p.Field, "43")
	assert.Equal(t, 43, s.secret)
}

func TestPropertyField_AccessFailureStopsPolling(t *testing.T) {
	o := &other{Speed: 1}
	// A field of sample read from an unrelated owner.
	p := uidebug.NewPropertyField(sampleContext(func() any { return o }, "Count"), uidebug.IntConverter[int]())
	assert.Equal(t, "N / A", p.Field.Text)
	assert.True(t, p.Field.Disabled)
	require.NotPanics(t, func() { p.Field.Act(0.016) })
}

func TestPropertyElement_Head(t *testing.T) {
	s := newSample()
	elem := uidebug.NewPropertyElement(sampleContext(func() any { return s }, "Max"))

	head, ok := elem.Cells()[0].Node().(*scene.Table)
	require.True(t, ok)
	var texts []string
	for _, c := range head.Cells() {
		texts = append(texts, c.Node().(*scene.Label).Text)
	}
	assert.Equal(t, []string{"Max", "int", "constant"}, texts)

	editor, ok := elem.Cells()[1].Node().(*scene.Label)
	require.True(t, ok, "constants use the read-only display")
	assert.Equal(t, "3", editor.Text)
}
