package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/resourcecmd/internal/types"
)

// Command layer helpers - return tea.Cmd with appropriate StatusMsg

// ErrorCmd returns a tea.Cmd that produces an error status message.
//
// Example:
//
//	if err != nil {
//	    return messages.ErrorCmd("Could not open %s: %v", url, err)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.ErrorStatusMsg(msg)
	}
}

// SuccessCmd returns a tea.Cmd that produces a success status message.
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.SuccessMsg(msg)
	}
}

// InfoCmd returns a tea.Cmd that produces an info status message.
//
// Example:
//
//	return messages.InfoCmd(`Type your search term and add "%s" to search`, prefix)
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.InfoMsg(msg)
	}
}

// LoadingCmd returns a tea.Cmd that produces a loading status message.
func LoadingCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.LoadingMsg(msg)
	}
}

// Data layer helpers - return wrapped errors with context

// WrapError wraps an error with additional context using fmt.Errorf.
// Preserves the error chain for debugging with %w.
//
// Example:
//
//	catalog, err := resources.Load(path)
//	if err != nil {
//	    return messages.WrapError(err, "failed to load catalog %s", path)
//	}
func WrapError(err error, format string, args ...any) error {
	context := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", context, err)
}
