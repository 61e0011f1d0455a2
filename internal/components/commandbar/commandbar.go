package commandbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/resourcecmd/internal/commands"
	"github.com/renato0307/resourcecmd/internal/host"
	"github.com/renato0307/resourcecmd/internal/keyboard"
	"github.com/renato0307/resourcecmd/internal/logging"
	"github.com/renato0307/resourcecmd/internal/resources"
	"github.com/renato0307/resourcecmd/internal/ui"
)

// CommandBar is the command palette: a search box over a list of resource
// search suggestions and registered commands.
type CommandBar struct {
	state CommandBarState
	width int
	theme *ui.Theme
	keys  keyboard.Bindings

	opener host.ResourceOpener
	logger *logging.Logger

	history *History
	palette *Palette
	input   *Input
}

// New creates a hidden command bar.
func New(registry *commands.Registry, catalog *resources.Catalog, opener host.ResourceOpener, theme *ui.Theme, keys keyboard.Bindings) *CommandBar {
	return &CommandBar{
		state:   StateHidden,
		width:   80,
		theme:   theme,
		keys:    keys,
		opener:  opener,
		logger:  logging.Component("commandbar"),
		history: NewHistory(MaxHistory),
		palette: NewPalette(registry, catalog, theme, 80),
		input:   NewInput(theme, 80),
	}
}

// SetWidth updates component widths.
func (cb *CommandBar) SetWidth(width int) {
	cb.width = width
	cb.palette.SetWidth(width)
	cb.input.SetWidth(width)
}

// Open makes the palette visible. Opening an open palette keeps its input.
func (cb *CommandBar) Open() {
	if cb.state == StateOpen {
		return
	}
	cb.state = StateOpen
	cb.history.Reset()
	cb.refilter()
	cb.logger.Debug("palette opened")
}

// Prefill replaces the search text and recomputes the list. A lone
// resource prefix such as "!t" is pinned, so the search term the user types
// next lands in front of it.
func (cb *CommandBar) Prefill(text string) {
	if isPrefixToken(text) {
		cb.input.Pin(text)
	} else {
		cb.input.Set(text)
	}
	cb.history.Reset()
	cb.refilter()
}

func isPrefixToken(text string) bool {
	return len(text) > 1 && strings.HasPrefix(text, "!") && !strings.ContainsAny(text, " \t")
}

// Close hides the palette and discards its input.
func (cb *CommandBar) Close() {
	cb.state = StateHidden
	cb.input.Clear()
	cb.palette.Reset()
	cb.history.Reset()
}

// IsOpen reports whether the palette is visible.
func (cb *CommandBar) IsOpen() bool {
	return cb.state == StateOpen
}

// GetState returns the current state.
func (cb *CommandBar) GetState() CommandBarState {
	return cb.state
}

// Input returns the current search text.
func (cb *CommandBar) Input() string {
	return cb.input.Get()
}

// Items returns the current palette list.
func (cb *CommandBar) Items() []Item {
	return cb.palette.Items()
}

// Selected returns the highlighted item, or nil.
func (cb *CommandBar) Selected() *Item {
	return cb.palette.Selected()
}

// History returns the executed inputs, oldest first.
func (cb *CommandBar) History() []string {
	return cb.history.Entries()
}

// GetHeight returns the rendered height including separators.
func (cb *CommandBar) GetHeight() int {
	if cb.state == StateHidden {
		return 0
	}
	// separator + input + items + separator
	return 3 + cb.palette.GetHeight()
}

// Update handles messages for the command bar.
func (cb *CommandBar) Update(msg tea.Msg) (*CommandBar, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cmd, _ := cb.HandleKey(msg)
		return cb, cmd
	}
	return cb, nil
}

// HandleKey processes a key while open. It reports false for keys the
// palette does not use so the caller can route them elsewhere.
func (cb *CommandBar) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if cb.state != StateOpen {
		return nil, false
	}

	switch {
	case key.Matches(msg, cb.keys.Back):
		cb.Close()
		return nil, true
	case key.Matches(msg, cb.keys.Execute):
		return cb.execute(), true
	case key.Matches(msg, cb.keys.Up):
		cb.navigate(true)
		return nil, true
	case key.Matches(msg, cb.keys.Down):
		cb.navigate(false)
		return nil, true
	}

	result := cb.input.HandleKeyMsg(msg)
	switch result.Action {
	case InputActionText:
		cb.input.AddText(result.Text)
		cb.history.Reset()
		cb.refilter()
		return nil, true
	case InputActionBackspace:
		if cb.input.Backspace() {
			cb.history.Reset()
			cb.refilter()
		}
		return nil, true
	}

	return nil, false
}

// navigate moves through the list, or through history when the list is
// empty or a history entry is already being browsed.
func (cb *CommandBar) navigate(up bool) {
	if !cb.palette.IsEmpty() && !cb.history.Navigating() {
		if up {
			cb.palette.NavigateUp()
		} else {
			cb.palette.NavigateDown()
		}
		return
	}

	var (
		entry string
		ok    bool
	)
	if up {
		entry, ok = cb.history.NavigateUp()
	} else {
		entry, ok = cb.history.NavigateDown()
	}
	if !ok && up {
		return
	}
	cb.input.Set(entry)
	cb.palette.Filter(entry)
}

// execute runs the selected item. The palette closes first so a command
// that reopens it (resource commands do) is not undone.
func (cb *CommandBar) execute() tea.Cmd {
	selected := cb.palette.Selected()
	if selected == nil {
		return nil
	}
	item := *selected
	input := cb.input.Get()

	cb.history.Add(input)
	cb.Close()

	switch item.Kind {
	case ItemSuggestion:
		cb.logger.Info("resource search", "resource", item.Suggestion.Resource.Name, "url", item.Suggestion.URL)
		item.Suggestion.Open(cb.opener)
		return nil
	case ItemCommand:
		cb.logger.Debug("command executed", "name", item.Command.Name)
		if item.Command.Execute != nil {
			return item.Command.Execute(commands.CommandContext{Input: input})
		}
	}
	return nil
}

func (cb *CommandBar) refilter() {
	cb.palette.Filter(cb.input.Get())
}

// View renders the command bar.
func (cb *CommandBar) View() string {
	if cb.state == StateHidden {
		return ""
	}

	separatorStyle := lipgloss.NewStyle().
		Foreground(cb.theme.Border).
		Width(cb.width)
	separator := separatorStyle.Render(strings.Repeat("─", cb.width))

	sections := []string{separator, cb.input.View()}
	if items := cb.palette.View(); items != "" {
		sections = append(sections, items)
	}
	sections = append(sections, separator)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ViewHints renders the hints line shown while the palette is hidden.
func (cb *CommandBar) ViewHints() string {
	if cb.state != StateHidden {
		return ""
	}

	hintStyle := lipgloss.NewStyle().
		Foreground(cb.theme.Dimmed).
		Width(cb.width).
		Padding(0, 1)

	hints := []string{
		cb.keys.PaletteActivate.Help().Key + " palette",
		cb.keys.ResourceChord.Help().Key + " search a resource",
		cb.keys.Quit.Help().Key + " quit",
	}
	return hintStyle.Render("[" + strings.Join(hints, "  ") + "]")
}
