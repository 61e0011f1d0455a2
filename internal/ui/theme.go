package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (hints, shortcuts)
	Subtle     lipgloss.AdaptiveColor // Selected row background
	Background lipgloss.AdaptiveColor // Background for overlays

	// Palette colors
	PaletteForeground         lipgloss.AdaptiveColor
	PaletteBackground         lipgloss.AdaptiveColor
	PaletteSelectedForeground lipgloss.AdaptiveColor
	PaletteShortcut           lipgloss.AdaptiveColor
	PaletteSuggestion         lipgloss.AdaptiveColor // resource search suggestions

	// Notice colors
	MessageInfo    lipgloss.AdaptiveColor
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageLoading lipgloss.AdaptiveColor

	// Component styles
	AppTitle lipgloss.Style
	Header   lipgloss.Style
}

// palette is the raw color set a theme is derived from.
type palette struct {
	primary, accent, foreground, muted lipgloss.AdaptiveColor
	success, errorColor, warning       lipgloss.AdaptiveColor
	border, subtle, background         lipgloss.AdaptiveColor
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Border:     p.border,
		Dimmed:     p.muted,
		Subtle:     p.subtle,
		Background: p.background,

		PaletteForeground:         p.foreground,
		PaletteBackground:         p.background,
		PaletteSelectedForeground: p.primary,
		PaletteShortcut:           p.muted,
		PaletteSuggestion:         p.accent,

		MessageInfo:    p.primary,
		MessageSuccess: p.success,
		MessageError:   p.errorColor,
		MessageLoading: p.warning,
	}

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.Background).
		Bold(true).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return newTheme("charm", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		accent:     lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"},
		foreground: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		errorColor: lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		warning:    lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"},
		border:     lipgloss.AdaptiveColor{Light: "240", Dark: "240"},
		subtle:     lipgloss.AdaptiveColor{Light: "254", Dark: "237"},
		background: lipgloss.AdaptiveColor{Light: "255", Dark: "235"},
	})
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	return newTheme("dracula", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"},
		accent:     lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"},
		foreground: lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"},
		muted:      lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		success:    lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"},
		errorColor: lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"},
		warning:    lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"},
		border:     lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#44475a"},
		subtle:     lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#44475a"},
		background: lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"},
	})
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	return newTheme("nord", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5E81AC", Dark: "#88C0D0"},
		accent:     lipgloss.AdaptiveColor{Light: "#B48EAD", Dark: "#B48EAD"},
		foreground: lipgloss.AdaptiveColor{Light: "#2E3440", Dark: "#ECEFF4"},
		muted:      lipgloss.AdaptiveColor{Light: "#4C566A", Dark: "#4C566A"},
		success:    lipgloss.AdaptiveColor{Light: "#A3BE8C", Dark: "#A3BE8C"},
		errorColor: lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"},
		warning:    lipgloss.AdaptiveColor{Light: "#EBCB8B", Dark: "#EBCB8B"},
		border:     lipgloss.AdaptiveColor{Light: "#D8DEE9", Dark: "#3B4252"},
		subtle:     lipgloss.AdaptiveColor{Light: "#E5E9F0", Dark: "#434C5E"},
		background: lipgloss.AdaptiveColor{Light: "#ECEFF4", Dark: "#2E3440"},
	})
}

// ThemeGruvbox returns a Gruvbox-inspired theme
func ThemeGruvbox() *Theme {
	return newTheme("gruvbox", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#076678", Dark: "#83a598"},
		accent:     lipgloss.AdaptiveColor{Light: "#8f3f71", Dark: "#d3869b"},
		foreground: lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"},
		muted:      lipgloss.AdaptiveColor{Light: "#928374", Dark: "#928374"},
		success:    lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"},
		errorColor: lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"},
		warning:    lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"},
		border:     lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"},
		subtle:     lipgloss.AdaptiveColor{Light: "#ebdbb2", Dark: "#3c3836"},
		background: lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"},
	})
}

var themes = map[string]func() *Theme{
	"charm":   ThemeCharm,
	"dracula": ThemeDracula,
	"nord":    ThemeNord,
	"gruvbox": ThemeGruvbox,
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	if f, ok := themes[name]; ok {
		return f()
	}
	return ThemeCharm()
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// AvailableThemes returns the sorted list of theme names
func AvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
