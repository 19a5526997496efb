package uidebug_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/scene"
)

func TestBrowser_RebuildsOnlyOnTypeChange(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	start := b.Rebuilds()

	x, y := newSample(), newSample()
	b.SetObject(x)
	assert.Equal(t, start+1, b.Rebuilds())
	first := b.Categories()
	require.Len(t, first, 2)

	b.SetObject(y)
	assert.Equal(t, start+1, b.Rebuilds(), "same type reuses the categories")
	assert.Same(t, y, b.Object())
	assert.Equal(t, first, b.Categories())

	b.SetObject(&other{})
	assert.Equal(t, start+2, b.Rebuilds())
	require.Len(t, b.Categories(), 1)
	assert.Equal(t, "other", b.Categories()[0].Level.Type.Name())
}

func TestBrowser_CategoriesBaseFirst(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	b.SetObject(newSample())

	cats := b.Categories()
	assert.Equal(t, "base", cats[0].Level.Type.Name())
	assert.Equal(t, "sample", cats[1].Level.Type.Name())
	assert.True(t, cats[0].Collapsed())
	assert.False(t, cats[1].Collapsed(), "most derived level starts open")
}

func TestBrowser_EditorsFollowObject(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	x, y := newSample(), newSample()
	y.Title = "second"
	b.SetObject(x)

	editor := findTextField(t, b.Root, "Title")
	assert.Equal(t, "hello", editor.Text)

	b.SetObject(y)
	b.Root.Act(0.016)
	assert.Equal(t, "second", editor.Text)

	submit(editor, "edited")
	assert.Equal(t, "edited", y.Title)
	assert.Equal(t, "hello", x.Title)
}

func TestBrowser_DescendAndBack(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	s := newSample()
	b.SetObject(s)

	b.Descend(s.Target)
	assert.Same(t, s.Target, b.Object())
	require.Len(t, b.Categories(), 1)
	assert.Equal(t, "point", b.Categories()[0].Level.Type.Name())

	b.Back()
	assert.Same(t, s, b.Object())
	b.Back()
	assert.Same(t, s, b.Object(), "empty history is a no-op")
}

func TestBrowser_ResetToSelection(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	s := newSample()
	b.SetSource(func() any { return s })
	b.SetObject(&other{})
	b.Descend(&point{})

	b.ResetToSelection()
	assert.Same(t, s, b.Object())
	b.Back()
	assert.Same(t, s, b.Object(), "history cleared")
}

func TestBrowser_UnreadableCopyLogsOnce(t *testing.T) {
	buf := captureLog(t)
	b := uidebug.NewBrowser(nil, nil)
	h := &holder{Inner: tuning{on: true, level: modeAuto}}
	b.SetObject(h)

	inner, ok := uidebug.MustField(reflect.TypeFor[holder](), "Inner").Descend(h)
	require.True(t, ok)
	b.Descend(inner)
	require.Len(t, b.Categories(), 1)

	b.Root.Act(0.016)
	after := strings.Count(buf.String(), "reflective access failed")
	assert.Positive(t, after)
	for range 10 {
		b.Root.Act(0.016)
	}
	assert.Equal(t, after, strings.Count(buf.String(), "reflective access failed"))
}

func TestBrowser_DescendOnlyIntoStructs(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	b.SetObject(newSample())

	target := findNamed[*scene.Table](t, b.Root, "Target")
	assert.Len(t, target.Cells(), 2, "pointer to struct can be followed")
	items := findNamed[*scene.Table](t, b.Root, "Items")
	assert.Len(t, items.Cells(), 1, "slices are shown in place")
}

func TestBrowser_NilAndEmpty(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	b.SetObject((*sample)(nil))
	assert.Nil(t, b.Object())
	assert.Empty(t, b.Categories())

	b.SetObject(&empty{})
	require.Len(t, b.Categories(), 1)
	assert.Empty(t, b.Categories()[0].Level.Fields)
	assert.Empty(t, b.Categories()[0].Visible())

	b.SetObject(3)
	assert.Empty(t, b.Categories())
}

func TestBrowser_Filter(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	b.SetObject(newSample())
	filter := findTextField(t, b.Root, "filter")

	for _, r := range "cont" {
		filter.KeyTyped(r)
	}
	cats := b.Categories()
	assert.Equal(t, []string{"Count"}, cats[1].Visible())
	assert.True(t, cats[0].Hidden(), "no base field matches")

	filter.SetText("")
	filter.KeyTyped('t')
	filter.KeyDown(scene.KeyBackspace)
	assert.Len(t, cats[1].Visible(), 11)
	assert.False(t, cats[0].Hidden())
}

func TestBrowser_FilterToleratesTypos(t *testing.T) {
	b := uidebug.NewBrowser(nil, nil)
	b.SetObject(newSample())
	filter := findTextField(t, b.Root, "filter")
	for _, r := range "tirle" {
		filter.KeyTyped(r)
	}
	assert.Contains(t, b.Categories()[1].Visible(), "Title")
}

func findTextField(t *testing.T, root scene.Node, name string) *scene.TextField {
	t.Helper()
	var found *scene.TextField
	var walk func(n scene.Node)
	walk = func(n scene.Node) {
		if found != nil {
			return
		}
		if f, ok := n.(*scene.TextField); ok && f.Name == name {
			found = f
			return
		}
		if c, ok := n.(scene.Container); ok {
			for _, child := range c.Children() {
				walk(child)
			}
		}
	}
	walk(root)
	require.NotNil(t, found, name)
	return found
}
