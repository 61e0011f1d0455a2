package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/resourcecmd/internal/types"
	"github.com/renato0307/resourcecmd/internal/ui"
)

// UserMessage shows the latest transient notice (success, errors, info,
// loading). Each notice gets an ID so a clear scheduled for an older notice
// leaves a newer one alone. Rendering is delegated to ui.RenderMessage().
type UserMessage struct {
	message     string
	messageType types.MessageType
	id          int
	duration    time.Duration
	width       int
	theme       *ui.Theme
	spinner     spinner.Model
}

// NewUserMessage creates a new user message component
func NewUserMessage(theme *ui.Theme, duration time.Duration) *UserMessage {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"✽", "✻", "✶", "·", "✢"},
		FPS:    time.Second / 6,
	}
	s.Style = lipgloss.NewStyle()

	if duration <= 0 {
		duration = NoticeDisplayDuration
	}

	return &UserMessage{
		theme:    theme,
		duration: duration,
		spinner:  s,
	}
}

// Show replaces the current notice. The returned command either clears it
// after the display duration or, for loading notices, starts the spinner.
func (um *UserMessage) Show(msg string, msgType types.MessageType) tea.Cmd {
	um.id++
	um.message = msg
	um.messageType = msgType

	if msgType == types.MessageTypeLoading {
		return um.spinner.Tick
	}

	id := um.id
	return tea.Tick(um.duration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// Clear removes the notice if it is still the one shown with id.
// It reports whether anything was cleared.
func (um *UserMessage) Clear(id int) bool {
	if id != um.id || um.message == "" {
		return false
	}
	um.message = ""
	um.messageType = types.MessageTypeInfo
	return true
}

// Message returns the text currently shown.
func (um *UserMessage) Message() string {
	return um.message
}

// Type returns the type of the current notice.
func (um *UserMessage) Type() types.MessageType {
	return um.messageType
}

// ID returns the ID of the latest notice.
func (um *UserMessage) ID() int {
	return um.id
}

// IsLoadingMessage returns true if the current message is a loading message
func (um *UserMessage) IsLoadingMessage() bool {
	return um.message != "" && um.messageType == types.MessageTypeLoading
}

// SetWidth sets the component width
func (um *UserMessage) SetWidth(width int) {
	um.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (um *UserMessage) GetHeight() int {
	return 1
}

// Update advances the spinner while a loading notice is shown.
func (um *UserMessage) Update(msg tea.Msg) (*UserMessage, tea.Cmd) {
	if !um.IsLoadingMessage() {
		return um, nil
	}
	var cmd tea.Cmd
	um.spinner, cmd = um.spinner.Update(msg)
	return um, cmd
}

// View renders the user message using the shared ui.RenderMessage function
func (um *UserMessage) View() string {
	if um.message == "" {
		// Render empty line to reserve space
		return lipgloss.NewStyle().Width(um.width).Render("")
	}

	var spinnerView string
	if um.messageType == types.MessageTypeLoading {
		spinnerView = um.spinner.View()
	}

	return ui.RenderMessage(um.message, um.messageType, um.theme, spinnerView, um.width)
}
