package commands

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/renato0307/resourcecmd/internal/resources"
)

// Registry holds all available commands and provides filtering
type Registry struct {
	commands []Command
}

// NewRegistry creates a registry with one search command per resource in
// catalog order, followed by the application commands.
func NewRegistry(catalog *resources.Catalog, h Host) *Registry {
	cmds := make([]Command, 0, catalog.Len()+1)
	for _, r := range catalog.All() {
		cmds = append(cmds, NewResourceCommand(r, h))
	}
	cmds = append(cmds, Command{
		Name:        QuitCommandName,
		Label:       "Quit",
		Description: "Exit the application",
		Category:    CategoryApp,
		Shortcut:    "ctrl+c",
		Execute:     QuitCommand(),
	})
	return &Registry{commands: cmds}
}

// All returns every command in registration order
func (r *Registry) All() []Command {
	result := make([]Command, len(r.commands))
	copy(result, r.commands)
	return result
}

// GetByCategory returns all commands in a category
func (r *Registry) GetByCategory(category CommandCategory) []Command {
	result := []Command{}
	for _, cmd := range r.commands {
		if cmd.Category == category {
			result = append(result, cmd)
		}
	}
	return result
}

// Filter returns commands whose label matches the query using fuzzy search
func (r *Registry) Filter(query string) []Command {
	query = strings.TrimSpace(query)

	// If query is empty, return all commands
	if query == "" {
		return r.All()
	}

	labels := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		labels[i] = cmd.Label
	}

	matches := fuzzy.Find(query, labels)

	// Return matching commands in ranked order
	result := make([]Command, len(matches))
	for i, match := range matches {
		result[i] = r.commands[match.Index]
	}

	return result
}

// Get returns a command by name, or nil if not found
func (r *Registry) Get(name string) *Command {
	for _, cmd := range r.commands {
		if strings.EqualFold(cmd.Name, name) {
			return &cmd
		}
	}
	return nil
}
