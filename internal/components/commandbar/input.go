package commandbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/resourcecmd/internal/ui"
)

// Input holds the palette search text. Editing happens at the end of the
// buffer, so only rune boundaries need care.
//
// A pinned token (a resource prefix such as "!t") stays at the end of the
// text while the user types in front of it.
type Input struct {
	buffer []rune
	pinned string
	theme  *ui.Theme
	width  int
}

// NewInput creates a new input manager.
func NewInput(theme *ui.Theme, width int) *Input {
	return &Input{theme: theme, width: width}
}

// SetWidth updates the input width.
func (i *Input) SetWidth(width int) {
	i.width = width
}

// Get returns the current text, pinned token included.
func (i *Input) Get() string {
	switch {
	case i.pinned == "":
		return string(i.buffer)
	case len(i.buffer) == 0:
		return i.pinned
	}
	return string(i.buffer) + " " + i.pinned
}

// Set replaces the text and drops any pinned token.
func (i *Input) Set(text string) {
	i.buffer = []rune(text)
	i.pinned = ""
}

// Pin clears the text and keeps token at its end until it is erased.
func (i *Input) Pin(token string) {
	i.buffer = nil
	i.pinned = token
}

// Clear clears the text and the pinned token.
func (i *Input) Clear() {
	i.buffer = nil
	i.pinned = ""
}

// IsEmpty returns true if there is no text and no pinned token.
func (i *Input) IsEmpty() bool {
	return len(i.buffer) == 0 && i.pinned == ""
}

// AddText appends typed or pasted text.
func (i *Input) AddText(text string) {
	i.buffer = append(i.buffer, []rune(text)...)
}

// Backspace removes the last typed rune, or the pinned token once nothing
// is typed in front of it. It returns false if there was nothing to remove.
func (i *Input) Backspace() bool {
	if len(i.buffer) > 0 {
		i.buffer = i.buffer[:len(i.buffer)-1]
		return true
	}
	if i.pinned != "" {
		i.pinned = ""
		return true
	}
	return false
}

// InputAction is the editing action a key maps to.
type InputAction int

const (
	InputActionNone InputAction = iota
	InputActionText
	InputActionBackspace
)

// KeyMsgResult represents the result of handling a key message.
type KeyMsgResult struct {
	Action InputAction
	Text   string
}

// HandleKeyMsg classifies a key as text entry, backspace or neither.
// Alt-modified runes are chords, not text.
func (i *Input) HandleKeyMsg(msg tea.KeyMsg) KeyMsgResult {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt && !msg.Paste {
			return KeyMsgResult{Action: InputActionNone}
		}
		return KeyMsgResult{Action: InputActionText, Text: string(msg.Runes)}
	case tea.KeySpace:
		return KeyMsgResult{Action: InputActionText, Text: " "}
	case tea.KeyBackspace:
		return KeyMsgResult{Action: InputActionBackspace}
	}
	return KeyMsgResult{Action: InputActionNone}
}

// View renders the input with a cursor, or the placeholder when empty.
func (i *Input) View() string {
	barStyle := lipgloss.NewStyle().
		Foreground(i.theme.Foreground).
		Width(i.width).
		Padding(0, 1)

	if i.IsEmpty() {
		placeholder := lipgloss.NewStyle().
			Foreground(i.theme.Dimmed).
			Italic(true).
			Render(Placeholder)
		return barStyle.Render("█" + placeholder)
	}

	if i.pinned == "" {
		return barStyle.Render(string(i.buffer) + "█")
	}
	pinned := lipgloss.NewStyle().
		Foreground(i.theme.PaletteShortcut).
		Render(i.pinned)
	return barStyle.Render(string(i.buffer) + "█ " + pinned)
}
