package uidebug

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/go-theft-auto/uidebug/scene"
)

const describeTextLimit = 30

// Describe returns a one-line description of n for headers and buttons.
// root is the stage root, which is described specially.
func Describe(n, root scene.Node) string {
	if isNilNode(n) {
		return "<none>"
	}
	if root != nil && n == root {
		return "<Scene root>"
	}

	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	desc := t.Name()
	switch v := n.(type) {
	case *scene.Label:
		desc += " (" + truncate(v.Text) + ")"
	case *scene.TextButton:
		desc += " (" + truncate(v.Text) + ")"
	case *scene.TextField:
		desc += " (" + truncate(v.Text) + ")"
	case scene.Container:
		switch k := len(v.Children()); k {
		case 0:
			desc += " (empty)"
		case 1:
			desc += " (1 child)"
		default:
			desc += fmt.Sprintf(" (%d children)", k)
		}
	}
	if name := n.Base().Name; name != "" {
		desc = name + " - " + desc
	}
	return desc
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= describeTextLimit {
		return s
	}
	return string([]rune(s)[:describeTextLimit]) + "..."
}

func isNilNode(n scene.Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
