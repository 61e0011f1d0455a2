// Package types holds the Bubble Tea messages shared by the app, the
// command bar and the host adapter.
package types

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading // Loading state with spinner
)

// String returns a string representation of the message type.
func (t MessageType) String() string {
	switch t {
	case MessageTypeInfo:
		return "info"
	case MessageTypeSuccess:
		return "success"
	case MessageTypeError:
		return "error"
	case MessageTypeLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// StatusMsg shows a transient notice.
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the notice shown with MessageID.
type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// LoadingMsg creates a loading status message (with spinner)
func LoadingMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeLoading}
}

// OpenPaletteMsg makes the command palette visible.
type OpenPaletteMsg struct{}

// PrefillPaletteMsg replaces the palette search text.
type PrefillPaletteMsg struct {
	Text string
}

// OpenResourceMsg requests that URL be opened outside the terminal.
type OpenResourceMsg struct {
	URL string
}

// QuitRequestMsg asks the app to tear down its extensions and exit.
type QuitRequestMsg struct{}

// TimerFiredMsg is delivered when a scheduled timer elapses.
type TimerFiredMsg struct {
	ID int
}
