// Package messages defines message handling patterns and conventions for
// resourcecmd. Consistent messaging across layers keeps notices predictable
// for the user and errors debuggable for the developer.
//
// # Message Handling Patterns by Layer
//
// ## Data Layer (internal/resources, internal/config, internal/browser)
//
// Return standard Go errors. These packages know nothing about the UI.
//
// Pattern:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
//	}
//
// Use fmt.Errorf with %w to wrap errors and preserve the chain. Always say
// which operation failed. messages.WrapError(err, "context") is an
// equivalent helper.
//
// ## Extension Core (internal/shortcut, internal/activator)
//
// No errors at all. Unrecognized input is ignored; every transition is a
// total function of state and event. A missing host capability is a broken
// integration and is not handled here.
//
// ## Command Layer (internal/commands)
//
// Return a tea.Cmd producing a StatusMsg. Commands run in response to user
// actions and report back through the Bubble Tea message loop.
//
// Pattern:
//
//	func openURL(opener *browser.Opener, url string) tea.Cmd {
//	    return func() tea.Msg {
//	        result, err := opener.Open(url)
//	        if err != nil {
//	            return types.ErrorStatusMsg(err.Error())
//	        }
//	        return types.SuccessMsg(result)
//	    }
//	}
//
// Use InfoCmd, SuccessCmd, ErrorCmd and LoadingCmd from this package when
// no work needs to happen inside the command.
//
// ## UI Layer (internal/app, internal/components)
//
// Notices are shown by the UserMessage component. UI code does not format
// errors itself - it receives ready StatusMsg values.
//
// Pattern:
//
//	case types.StatusMsg:
//	    id := m.notice.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(m.noticeDuration, func(time.Time) tea.Msg {
//	        return types.ClearStatusMsg{MessageID: id}
//	    })
//
// The clear message carries the ID of the notice it belongs to, so a newer
// notice is never cleared by an older timer.
//
// ## Startup (cmd/resourcecmd)
//
// Configuration and catalog errors abort startup: they are returned to
// main, logged, printed and the process exits with status 1.
//
// # Error Message Guidelines
//
//  1. Be specific: "Could not open https://wordpress.tv/?s=x" not "Failed"
//  2. Include context: which operation failed and on what
//  3. Keep it short: notices are a single terminal line
package messages
