package keyboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Keys holds all keyboard shortcut configurations for resourcecmd
type Keys struct {
	// Activation
	PaletteActivate string // Open the command palette
	ResourceChord   string // Arm the two-step resource search

	// Palette navigation
	Up      string // Move selection up
	Down    string // Move selection down
	Execute string // Run the selected item
	Back    string // Close the palette

	// Global
	Quit string // Quit application
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		PaletteActivate: "ctrl+p",
		ResourceChord:   "alt+h",

		Up:      "up",
		Down:    "down",
		Execute: "enter",
		Back:    "esc",

		Quit: "ctrl+c",
	}
}

// Merge returns a copy of k with every non-empty field of override applied.
func (k *Keys) Merge(override Keys) *Keys {
	merged := *k
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&merged.PaletteActivate, override.PaletteActivate)
	set(&merged.ResourceChord, override.ResourceChord)
	set(&merged.Up, override.Up)
	set(&merged.Down, override.Down)
	set(&merged.Execute, override.Execute)
	set(&merged.Back, override.Back)
	set(&merged.Quit, override.Quit)
	return &merged
}

// Bindings are the key.Binding forms of Keys.
type Bindings struct {
	PaletteActivate key.Binding
	ResourceChord   key.Binding
	Up              key.Binding
	Down            key.Binding
	Execute         key.Binding
	Back            key.Binding
	Quit            key.Binding
}

// Bindings builds key.Binding values from the configured chords.
func (k *Keys) Bindings() Bindings {
	return Bindings{
		PaletteActivate: NewBinding(k.PaletteActivate, "command palette"),
		ResourceChord:   NewBinding(k.ResourceChord, "search a resource"),
		Up:              NewBinding(k.Up, "previous"),
		Down:            NewBinding(k.Down, "next"),
		Execute:         NewBinding(k.Execute, "run"),
		Back:            NewBinding(k.Back, "close"),
		Quit:            NewBinding(k.Quit, "quit"),
	}
}

// NewBinding builds a binding from a comma separated chord list
// ("ctrl+p" or "ctrl+p,ctrl+k"). The first chord is shown in help.
func NewBinding(chords, help string) key.Binding {
	var keys []string
	for _, c := range strings.Split(chords, ",") {
		if c = strings.TrimSpace(c); c != "" {
			keys = append(keys, c)
		}
	}
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], help),
	)
}
