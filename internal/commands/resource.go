package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/resourcecmd/internal/resources"
)

// CommandPrefix namespaces every resource command name.
const CommandPrefix = "search-resources/search-"

// ResourceCommandName returns the command name for r.
func ResourceCommandName(r resources.Resource) string {
	return CommandPrefix + r.Prefix
}

// NewResourceCommand builds the palette command for r. Running it opens the
// palette and tells the user which suffix to type.
func NewResourceCommand(r resources.Resource, h Host) Command {
	res := r
	return Command{
		Name:        ResourceCommandName(r),
		Label:       r.CommandLabel(),
		Description: r.URL,
		Category:    CategoryResource,
		Resource:    &res,
		Execute:     ResourceSearchCommand(res, h),
	}
}

// ResourceSearchCommand returns the execute func of a resource command
func ResourceSearchCommand(r resources.Resource, h Host) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		h.OpenPalette()
		h.ShowTransientNotice(ResourceHint(r))
		return nil
	}
}

// ResourceHint is the notice shown when a resource command runs.
func ResourceHint(r resources.Resource) string {
	return fmt.Sprintf("Type your search term and add %q to search", r.Prefix)
}
