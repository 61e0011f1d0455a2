package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/resourcecmd/internal/ui"
)

// Header is the top line: app name, catalog size and the armed indicator.
type Header struct {
	appName       string
	resourceCount int
	armed         bool
	width         int
	theme         *ui.Theme
}

func NewHeader(appName string, resourceCount int, theme *ui.Theme) *Header {
	return &Header{
		appName:       appName,
		resourceCount: resourceCount,
		theme:         theme,
	}
}

// SetArmed toggles the "waiting for a resource key" indicator.
func (h *Header) SetArmed(armed bool) {
	h.armed = armed
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	left := h.theme.AppTitle.Render(h.appName)

	info := fmt.Sprintf("%d resources", h.resourceCount)
	if h.armed {
		info = lipgloss.NewStyle().
			Foreground(h.theme.Accent).
			Bold(true).
			Render("● waiting for resource key") + "  " + info
	}
	right := h.theme.Header.Padding(0, 1).Render(info)

	gap := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
