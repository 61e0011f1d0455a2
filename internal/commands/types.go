package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/resourcecmd/internal/host"
	"github.com/renato0307/resourcecmd/internal/resources"
)

// CommandCategory represents the type of command
type CommandCategory int

const (
	CategoryResource CommandCategory = iota // Resource search commands
	CategoryApp                             // Application commands (quit)
)

// CommandContext provides context for command execution
type CommandContext struct {
	Input string // Palette text at the time the command ran
}

// ExecuteFunc is a function that executes a command and returns a Bubble Tea command
type ExecuteFunc func(ctx CommandContext) tea.Cmd

// Command represents a command in the palette
type Command struct {
	Name        string          // Unique name (e.g., "search-resources/search-!b")
	Label       string          // Text shown in the palette
	Description string          // Human-readable description
	Category    CommandCategory // Command category
	Resource    *resources.Resource
	Shortcut    string      // Keyboard shortcut hint (e.g., "ctrl+c")
	Execute     ExecuteFunc // Execution function
}

// Host is the part of the palette host that commands drive.
type Host interface {
	host.Palette
	host.Notifier
}
