package scene

// Clipboard abstracts system clipboard access for text fields.
//
// For GLFW, see opengl.GLFWClipboard.
type Clipboard interface {
	// GetText returns the clipboard text, or "" when it holds none.
	GetText() string
	SetText(text string)
}

var clipboard Clipboard

// SetClipboard installs the clipboard used by KeyCopy and KeyPaste. A nil
// clipboard disables both.
func SetClipboard(c Clipboard) {
	clipboard = c
}
