package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/resourcecmd/internal/types"
)

// QuitCommandName is the name of the quit command.
const QuitCommandName = "app/quit"

// QuitCommand returns a command that asks the app to quit. The app owns
// teardown, so the command does not return tea.Quit itself.
func QuitCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return func() tea.Msg {
			return types.QuitRequestMsg{}
		}
	}
}
