package commandbar

import (
	"github.com/renato0307/resourcecmd/internal/commands"
	"github.com/renato0307/resourcecmd/internal/shortcut"
)

// CommandBarState represents the current state of the command bar.
type CommandBarState int

const (
	StateHidden CommandBarState = iota
	StateOpen                   // Palette visible, accepting input
)

// String returns the state name for logging.
func (s CommandBarState) String() string {
	if s == StateOpen {
		return "open"
	}
	return "hidden"
}

// ItemKind tells palette items apart.
type ItemKind int

const (
	ItemSuggestion ItemKind = iota // Resource search derived from input
	ItemCommand                    // Registered palette command
)

// Item is one row of the palette list.
type Item struct {
	Kind       ItemKind
	Label      string
	Hint       string // Right-aligned hint (shortcut or target URL)
	Suggestion *shortcut.Suggestion
	Command    *commands.Command
}

func suggestionItem(s shortcut.Suggestion) Item {
	return Item{
		Kind:       ItemSuggestion,
		Label:      s.Label,
		Hint:       s.Resource.URL,
		Suggestion: &s,
	}
}

func commandItem(c commands.Command) Item {
	return Item{
		Kind:    ItemCommand,
		Label:   c.Label,
		Hint:    c.Shortcut,
		Command: &c,
	}
}
