package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/resourcecmd/internal/types"
)

// RenderMessage renders a notice with styling for its type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, spinnerView string, width int) string {
	if text == "" {
		return ""
	}

	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := max(width-7, 20)
	runes := []rune(text)
	if len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	var messageColor lipgloss.AdaptiveColor
	prefix := "⏺ "

	switch msgType {
	case types.MessageTypeSuccess:
		messageColor = theme.MessageSuccess
	case types.MessageTypeError:
		messageColor = theme.MessageError
	case types.MessageTypeLoading:
		messageColor = theme.MessageLoading
		if spinnerView != "" {
			prefix = spinnerView + " "
		}
	default:
		messageColor = theme.MessageInfo
	}

	messageStyle := lipgloss.NewStyle().Foreground(messageColor)
	return messageStyle.Render(prefix + text)
}
