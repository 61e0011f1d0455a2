package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/resourcecmd/internal/resources"
	"github.com/renato0307/resourcecmd/internal/ui"
)

// CatalogView lists the searchable resources grouped by kind, with the
// suffix and the activation key of each.
type CatalogView struct {
	catalog *resources.Catalog
	width   int
	theme   *ui.Theme
}

func NewCatalogView(catalog *resources.Catalog, theme *ui.Theme) *CatalogView {
	return &CatalogView{catalog: catalog, theme: theme}
}

func (v *CatalogView) SetWidth(width int) {
	v.width = width
}

func (v *CatalogView) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(v.theme.Primary).
		Bold(true).
		Padding(0, 1)
	keyStyle := lipgloss.NewStyle().
		Foreground(v.theme.Accent)
	urlStyle := lipgloss.NewStyle().
		Foreground(v.theme.Dimmed)

	groups := []struct {
		title string
		kind  resources.Kind
	}{
		{"Handbooks", resources.KindHandbook},
		{"Learning resources", resources.KindSite},
	}

	var lines []string
	for _, g := range groups {
		list := v.catalog.ByKind(g.kind)
		if len(list) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(g.title))
		for _, r := range list {
			row := fmt.Sprintf("  %s  %-18s %s",
				keyStyle.Render(r.Prefix),
				r.Name,
				urlStyle.Render(r.URL))
			lines = append(lines, row)
		}
	}

	return lipgloss.NewStyle().
		Width(v.width).
		Render(strings.Join(lines, "\n"))
}
