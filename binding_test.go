package uidebug_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
)

var sampleType = reflect.TypeFor[sample]()

func TestBinding_ReadsThroughProvider(t *testing.T) {
	first, second := newSample(), newSample()
	second.Count = 9
	owner := first
	b := uidebug.NewBinding(func() any { return owner }, uidebug.MustField(sampleType, "Count"), uidebug.IntConverter[int]())

	v, err := b.Current()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	owner = second
	v, err = b.Current()
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestBinding_OwnerAbsent(t *testing.T) {
	var owner *sample
	b := uidebug.NewBinding(func() any { return owner }, uidebug.MustField(sampleType, "Count"), uidebug.IntConverter[int]())

	_, ok := b.Owner()
	assert.False(t, ok, "typed nil pointer counts as absent")
	_, err := b.Current()
	assert.ErrorIs(t, err, uidebug.ErrOwnerAbsent)
	assert.ErrorIs(t, b.Commit(3), uidebug.ErrOwnerAbsent)
	assert.ErrorIs(t, b.CommitText("3"), uidebug.ErrOwnerAbsent)

	untyped := uidebug.NewBinding(func() any { return nil }, uidebug.MustField(sampleType, "Count"), uidebug.IntConverter[int]())
	_, err = untyped.Current()
	assert.ErrorIs(t, err, uidebug.ErrOwnerAbsent)
}

func TestBinding_CommitIsNotAnExternalChange(t *testing.T) {
	s := newSample()
	b := uidebug.NewBinding(func() any { return s }, uidebug.MustField(sampleType, "Count"), uidebug.IntConverter[int]())

	_, changed, err := b.Changed()
	require.NoError(t, err)
	assert.True(t, changed, "first poll reports the initial value")

	require.NoError(t, b.CommitText("12"))
	assert.Equal(t, 12, s.Count)
	_, changed, _ = b.Changed()
	assert.False(t, changed)

	s.Count = 13
	v, changed, _ := b.Changed()
	assert.True(t, changed)
	assert.Equal(t, 13, v)
	_, changed, _ = b.Changed()
	assert.False(t, changed)
}

func TestBinding_ParseFailureLeavesOwner(t *testing.T) {
	s := newSample()
	b := uidebug.NewBinding(func() any { return s }, uidebug.MustField(sampleType, "Count"), uidebug.IntConverter[int]())
	b.Changed()

	err := b.CommitText("abc")
	assert.ErrorIs(t, err, uidebug.ErrParse)
	assert.Equal(t, 7, s.Count)
	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, 7, last)
}

func TestBinding_DetectsPointeeMutation(t *testing.T) {
	s := newSample()
	b := uidebug.NewBinding(func() any { return s }, uidebug.MustField(sampleType, "Target"), uidebug.Converter[*point]{})
	b.Changed()

	s.Target.X = 5
	v, changed, err := b.Changed()
	require.NoError(t, err)
	assert.True(t, changed, "same pointer, mutated pointee")
	assert.Same(t, s.Target, v)

	_, changed, _ = b.Changed()
	assert.False(t, changed)
}

func TestBinding_DetectsSliceMutation(t *testing.T) {
	s := newSample()
	b := uidebug.NewBinding(func() any { return s }, uidebug.MustField(sampleType, "Items"), uidebug.Converter[[]string]{})
	b.Changed()

	s.Items[0] = "z"
	_, changed, _ := b.Changed()
	assert.True(t, changed)
}

func TestBinding_Reset(t *testing.T) {
	s := newSample()
	b := uidebug.NewBinding(func() any { return s }, uidebug.MustField(sampleType, "Title"), uidebug.StringConverter())
	b.Changed()
	b.Reset()
	_, ok := b.Last()
	assert.False(t, ok)
	_, changed, _ := b.Changed()
	assert.True(t, changed)
}

func TestFingerprint(t *testing.T) {
	assert.Zero(t, uidebug.Fingerprint(nil))
	assert.Zero(t, uidebug.Fingerprint(5))
	assert.Zero(t, uidebug.Fingerprint((*point)(nil)))

	p := &point{X: 1}
	before := uidebug.Fingerprint(p)
	assert.NotZero(t, before)
	assert.Equal(t, before, uidebug.Fingerprint(&point{X: 1}), "hashes content, not identity")
	p.X = 2
	assert.NotEqual(t, before, uidebug.Fingerprint(p))
}
