package themes

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Icon names a glyph the UI needs, independent of how a terminal can draw it.
type Icon string

// Icons used by the TUI.
const (
	IconArrow    Icon = "arrow"
	IconDot      Icon = "dot"
	IconRadioOn  Icon = "radio-on"
	IconRadioOff Icon = "radio-off"
	IconCopy     Icon = "copy"
	IconSearch   Icon = "search"
	IconChevron  Icon = "chevron"
	IconCheck    Icon = "check"
	IconWarning  Icon = "warning"
)

// IconSet maps each icon to the glyph a particular terminal capability can
// render.
type IconSet struct {
	glyphs map[Icon]string
	name   string
}

var (
	// UnicodeIcons renders with box-drawing and symbol glyphs.
	UnicodeIcons = IconSet{
		name: "unicode",
		glyphs: map[Icon]string{
			IconArrow:    "→",
			IconDot:      "●",
			IconRadioOn:  "◉",
			IconRadioOff: "○",
			IconCopy:     "⧉",
			IconSearch:   "⌕",
			IconChevron:  "▾",
			IconCheck:    "✓",
			IconWarning:  "⚠",
		},
	}

	// ASCIIIcons renders on terminals without unicode support.
	ASCIIIcons = IconSet{
		name: "ascii",
		glyphs: map[Icon]string{
			IconArrow:    "->",
			IconDot:      "*",
			IconRadioOn:  "(*)",
			IconRadioOff: "( )",
			IconCopy:     "[c]",
			IconSearch:   "/",
			IconChevron:  "v",
			IconCheck:    "ok",
			IconWarning:  "!",
		},
	}
)

var iconSets = map[string]IconSet{
	UnicodeIcons.name: UnicodeIcons,
	ASCIIIcons.name:   ASCIIIcons,
}

// LookupIcons returns the icon set registered under tag.
func LookupIcons(tag string) (IconSet, error) {
	set, ok := iconSets[tag]
	if !ok {
		return IconSet{}, fmt.Errorf("unknown icon set %q (available: %v)", tag, IconSetNames())
	}
	return set, nil
}

// IconSetNames returns the registered icon set tags in sorted order.
func IconSetNames() []string {
	names := make([]string, 0, len(iconSets))
	for name := range iconSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the set's tag.
func (s IconSet) Name() string {
	return s.name
}

// Get returns the glyph for icon. Sets missing a glyph fall back to ASCII.
func (s IconSet) Get(icon Icon) string {
	if g, ok := s.glyphs[icon]; ok {
		return g
	}
	if g, ok := ASCIIIcons.glyphs[icon]; ok {
		return g
	}
	return "?"
}

// Render returns the glyph for icon drawn with style.
func (s IconSet) Render(icon Icon, style lipgloss.Style) string {
	return style.Render(s.Get(icon))
}
