package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout stacks the header, body, command bar and notice line.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the rows left for the body once the header,
// the command bar and the notice line are placed.
func (l *Layout) CalculateBodyHeight(commandBarHeight int) int {
	// header (1) + empty line (1) + notice (1) + hints (1)
	reserved := 4 + commandBarHeight
	return max(l.height-reserved, 1)
}

// Render builds the full layout
func (l *Layout) Render(header, body, commandBar, hints, message string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}

	barHeight := 0
	if commandBar != "" {
		barHeight = lipgloss.Height(commandBar)
	}
	bodyHeight := l.CalculateBodyHeight(barHeight)
	sections = append(sections, lipgloss.NewStyle().Height(bodyHeight).Render(body))

	if commandBar != "" {
		sections = append(sections, commandBar)
	}
	if hints != "" {
		sections = append(sections, hints)
	}
	sections = append(sections, message)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
