package uidebug

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Bundle resolves symbolic keys to display strings.
type Bundle interface {
	Get(key string) string
}

// Symbolic keys referenced by the inspector UI.
const (
	BundleTitle            = "uidebugger.uiDebuggerTitle"
	BundleOpen             = "uidebugger.uiDebugger"
	BundleSelectTitle      = "uidebugger.elementSelectTitle"
	BundleClickConfirm     = "uidebugger.clickConfirm"
	BundleSelectElement    = "uidebugger.selectElement"
	BundleNoElement        = "uidebugger.noElement"
	BundleCurrentElement   = "uidebugger.currentElement"
	BundleCurrentObject    = "uidebugger.currentObject"
	BundleResetToElement   = "uidebugger.resetToElement"
	BundleNotAvailable     = "uidebugger.notAvailable"
	BundleConstant         = "uidebugger.constant"
	BundleChange           = "uidebugger.change"
	BundleDescend          = "uidebugger.descend"
	BundleBack             = "uidebugger.back"
	BundleFilter           = "uidebugger.filter"
	BundleNoMembers        = "uidebugger.classHasNoMembers"
	BundleEnabled          = "uidebugger.enabled"
	BundleDisabled         = "uidebugger.disabled"
	BundleDebugBounds      = "uidebugger.debugBounds"
	BundleDebugCells       = "uidebugger.debugCells"
	BundleDebugHidden      = "uidebugger.debugHiddenElements"
	BundleBoundsOpacity    = "uidebugger.boundsOpacity"
	BundleBoundsThickness  = "uidebugger.boundsThickness"
	BundlePagePreferences  = "uidebugger.page.preferences"
	BundlePagePreview      = "uidebugger.page.preview"
	BundlePageProperties   = "uidebugger.page.properties"
	BundlePageOther        = "uidebugger.page.otherProperties"
	BundlePageHierarchy    = "uidebugger.page.hierarchy"
	BundleCellSpecific     = "uidebugger.cellSpecific"
	BundleNoCell           = "uidebugger.noCell"
	BundleCancel           = "uidebugger.cancel"
	BundleShrink           = "uidebugger.shrink"
	BundleInvalidate       = "uidebugger.invalidate"
	BundleRemove           = "uidebugger.remove"
	BundleParent           = "uidebugger.parent"
	BundleSelectParent     = "uidebugger.selectParent"
	BundleChildren         = "uidebugger.children"
	BundleUpdate           = "uidebugger.update"
	BundleVisibilityLocked = "uidebugger.visibilityLocked"
)

var englishMessages = map[string]string{
	BundleTitle:            "UI Debugger",
	BundleOpen:             "UI debugger",
	BundleSelectTitle:      "Select an element",
	BundleClickConfirm:     "click again to confirm",
	BundleSelectElement:    "Select an element",
	BundleNoElement:        "No element selected",
	BundleCurrentElement:   "Current element",
	BundleCurrentObject:    "Current object",
	BundleResetToElement:   "Reset to element",
	BundleNotAvailable:     "N / A",
	BundleConstant:         "constant",
	BundleChange:           "change",
	BundleDescend:          ">",
	BundleBack:             "<",
	BundleFilter:           "filter fields",
	BundleNoMembers:        "class has no members",
	BundleEnabled:          "enabled",
	BundleDisabled:         "disabled",
	BundleDebugBounds:      "Debug element bounds",
	BundleDebugCells:       "Debug table cells",
	BundleDebugHidden:      "Debug hidden elements",
	BundleBoundsOpacity:    "Bounds opacity",
	BundleBoundsThickness:  "Bounds thickness",
	BundlePagePreferences:  "preferences",
	BundlePagePreview:      "preview",
	BundlePageProperties:   "properties",
	BundlePageOther:        "other properties",
	BundlePageHierarchy:    "hierarchy",
	BundleCellSpecific:     "Cell-specific",
	BundleNoCell:           "The element is not in a table",
	BundleCancel:           "cancel",
	BundleShrink:           "shrink",
	BundleInvalidate:       "invalidate",
	BundleRemove:           "remove",
	BundleParent:           "Parent",
	BundleSelectParent:     "select parent",
	BundleChildren:         "Children",
	BundleUpdate:           "update",
	BundleVisibilityLocked: "visibility is driven by a provider",
}

// CatalogBundle looks up messages in an x/text catalog. Keys that were never
// registered render as ???key???.
type CatalogBundle struct {
	builder *catalog.Builder
	printer *message.Printer
	english *message.Printer
	tag     language.Tag
	known   map[string]struct{}
}

// NewCatalogBundle creates a bundle for tag with the English messages
// registered as fallback.
func NewCatalogBundle(tag language.Tag) *CatalogBundle {
	b := &CatalogBundle{
		builder: catalog.NewBuilder(catalog.Fallback(language.English)),
		tag:     tag,
		known:   make(map[string]struct{}, len(englishMessages)),
	}
	for key, msg := range englishMessages {
		if err := b.Set(language.English, key, msg); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("cannot register message")
		}
	}
	b.printer = message.NewPrinter(tag, message.Catalog(b.builder))
	b.english = message.NewPrinter(language.English, message.Catalog(b.builder))
	return b
}

// Set registers or replaces the message for key in the given language.
func (b *CatalogBundle) Set(tag language.Tag, key, msg string) error {
	if err := b.builder.SetString(tag, key, msg); err != nil {
		return fmt.Errorf("set message %q: %w", key, err)
	}
	b.known[key] = struct{}{}
	return nil
}

// Get implements Bundle.
func (b *CatalogBundle) Get(key string) string {
	if _, ok := b.known[key]; !ok {
		return "???" + key + "???"
	}
	// A missing translation prints the key itself.
	if msg := b.printer.Sprintf(key); msg != key {
		return msg
	}
	return b.english.Sprintf(key)
}

// Language returns the bundle's display language.
func (b *CatalogBundle) Language() language.Tag { return b.tag }
