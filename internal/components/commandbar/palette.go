package commandbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/resourcecmd/internal/commands"
	"github.com/renato0307/resourcecmd/internal/resources"
	"github.com/renato0307/resourcecmd/internal/shortcut"
	"github.com/renato0307/resourcecmd/internal/ui"
)

// Palette manages command palette filtering, rendering, and navigation.
type Palette struct {
	items        []Item
	index        int
	scrollOffset int // First visible item index
	registry     *commands.Registry
	catalog      *resources.Catalog
	theme        *ui.Theme
	width        int
}

// NewPalette creates a new palette manager.
func NewPalette(registry *commands.Registry, catalog *resources.Catalog, theme *ui.Theme, width int) *Palette {
	return &Palette{
		registry: registry,
		catalog:  catalog,
		theme:    theme,
		width:    width,
	}
}

// SetWidth updates the palette width.
func (p *Palette) SetWidth(width int) {
	p.width = width
}

// Filter rebuilds the item list for query: resource search suggestions
// first, then the commands whose label fuzzy-matches.
func (p *Palette) Filter(query string) {
	var items []Item
	for _, s := range shortcut.Match(query, p.catalog) {
		items = append(items, suggestionItem(s))
	}
	for _, c := range p.registry.Filter(query) {
		items = append(items, commandItem(c))
	}

	p.items = items
	p.index = 0
	p.scrollOffset = 0
}

// NavigateUp moves selection up in palette.
// Scrolls viewport if cursor moves above visible range.
func (p *Palette) NavigateUp() {
	if p.index > 0 {
		p.index--
		if p.index < p.scrollOffset {
			p.scrollOffset = p.index
		}
	}
}

// NavigateDown moves selection down in palette.
// Scrolls viewport if cursor moves below visible range.
func (p *Palette) NavigateDown() {
	if p.index < len(p.items)-1 {
		p.index++
		maxVisibleIndex := p.scrollOffset + MaxPaletteItems - 1
		if p.index > maxVisibleIndex {
			p.scrollOffset = p.index - MaxPaletteItems + 1
		}
	}
}

// Selected returns the currently selected item, or nil if empty.
func (p *Palette) Selected() *Item {
	if p.index >= 0 && p.index < len(p.items) {
		return &p.items[p.index]
	}
	return nil
}

// SelectedIndex returns the index of the selected item.
func (p *Palette) SelectedIndex() int {
	return p.index
}

// Items returns a copy of the current items.
func (p *Palette) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// IsEmpty returns true if palette has no items.
func (p *Palette) IsEmpty() bool {
	return len(p.items) == 0
}

// Reset clears the palette.
func (p *Palette) Reset() {
	p.items = nil
	p.index = 0
	p.scrollOffset = 0
}

// GetHeight returns the number of rows the list occupies.
func (p *Palette) GetHeight() int {
	return min(len(p.items), MaxPaletteItems)
}

// View renders the visible items with a selection indicator and
// right-aligned hints.
func (p *Palette) View() string {
	if p.IsEmpty() {
		return ""
	}

	visibleEnd := p.scrollOffset + min(MaxPaletteItems, len(p.items)-p.scrollOffset)

	// First pass: find longest label to align hints
	longest := 0
	for i := p.scrollOffset; i < visibleEnd; i++ {
		longest = max(longest, lipgloss.Width(p.items[i].Label))
	}
	hintColumn := longest + 4

	lines := make([]string, 0, visibleEnd-p.scrollOffset)
	for i := p.scrollOffset; i < visibleEnd; i++ {
		item := p.items[i]

		labelStyle := lipgloss.NewStyle()
		if item.Kind == ItemSuggestion {
			labelStyle = labelStyle.Foreground(p.theme.PaletteSuggestion)
		}
		content := labelStyle.Render(item.Label)

		if item.Hint != "" {
			padding := max(hintColumn-lipgloss.Width(item.Label), 2)
			hint := lipgloss.NewStyle().
				Foreground(p.theme.PaletteShortcut).
				Render(item.Hint)
			content += strings.Repeat(" ", padding) + hint
		}

		var line string
		if i == p.index {
			selectedStyle := lipgloss.NewStyle().
				Foreground(p.theme.PaletteSelectedForeground).
				Background(p.theme.Subtle).
				Width(p.width).
				Padding(0, 1).
				Bold(true)
			line = selectedStyle.Render("▶ " + content)
		} else {
			paletteStyle := lipgloss.NewStyle().
				Foreground(p.theme.PaletteForeground).
				Background(p.theme.PaletteBackground).
				Width(p.width).
				Padding(0, 1)
			line = paletteStyle.Render("  " + content)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
