package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/resourcecmd/internal/host/hosttest"
	"github.com/renato0307/resourcecmd/internal/resources"
	"github.com/renato0307/resourcecmd/internal/types"
)

func TestNewRegistry(t *testing.T) {
	catalog := resources.Default()
	registry := NewRegistry(catalog, hosttest.NewHost())

	require.NotNil(t, registry)
	resourceCmds := registry.GetByCategory(CategoryResource)
	require.Len(t, resourceCmds, catalog.Len())

	for i, r := range catalog.All() {
		cmd := resourceCmds[i]
		assert.Equal(t, "search-resources/search-"+r.Prefix, cmd.Name)
		assert.Equal(t, r.CommandLabel(), cmd.Label)
		require.NotNil(t, cmd.Resource)
		assert.Equal(t, r, *cmd.Resource)
	}

	appCmds := registry.GetByCategory(CategoryApp)
	require.Len(t, appCmds, 1)
	assert.Equal(t, QuitCommandName, appCmds[0].Name)
}

func TestRegistry_Labels(t *testing.T) {
	registry := NewRegistry(resources.Default(), hosttest.NewHost())

	tests := []struct {
		name  string
		label string
	}{
		{name: "search-resources/search-!b", label: "Search Block Editor Handbook"},
		{name: "search-resources/search-!r", label: "Search REST API Handbook"},
		{name: "search-resources/search-!l", label: "Search Learn WordPress"},
		{name: "search-resources/search-!v", label: "Search WordPress TV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := registry.Get(tt.name)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.label, cmd.Label)
		})
	}
}

func TestRegistry_Filter(t *testing.T) {
	registry := NewRegistry(resources.Default(), hosttest.NewHost())

	tests := []struct {
		name      string
		query     string
		wantFirst string
		wantLen   int
	}{
		{name: "empty query returns all", query: "", wantFirst: "search-resources/search-!b", wantLen: 7},
		{name: "blank query returns all", query: "   ", wantFirst: "search-resources/search-!b", wantLen: 7},
		{name: "theme", query: "theme", wantFirst: "search-resources/search-!t"},
		{name: "tv", query: "wordpress tv", wantFirst: "search-resources/search-!v"},
		{name: "quit", query: "quit", wantFirst: QuitCommandName},
		{name: "no match", query: "zzzz", wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registry.Filter(tt.query)
			if tt.wantFirst == "" {
				assert.Len(t, got, tt.wantLen)
				return
			}
			require.NotEmpty(t, got)
			assert.Equal(t, tt.wantFirst, got[0].Name)
			if tt.wantLen > 0 {
				assert.Len(t, got, tt.wantLen)
			}
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry(resources.Default(), hosttest.NewHost())

	assert.NotNil(t, registry.Get("SEARCH-RESOURCES/SEARCH-!P"))
	assert.Nil(t, registry.Get("search-resources/search-!z"))
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	registry := NewRegistry(resources.Default(), hosttest.NewHost())

	all := registry.All()
	all[0].Label = "changed"
	assert.Equal(t, "Search Block Editor Handbook", registry.All()[0].Label)
}

func TestResourceCommand_Execute(t *testing.T) {
	h := hosttest.NewHost()
	registry := NewRegistry(resources.Default(), h)

	cmd := registry.Get("search-resources/search-!t")
	require.NotNil(t, cmd)

	teaCmd := cmd.Execute(CommandContext{})
	assert.Nil(t, teaCmd)
	assert.Equal(t, 1, h.PaletteOpens)
	assert.Equal(t, []string{`Type your search term and add "!t" to search`}, h.Notices)
	assert.Empty(t, h.Prefills)
}

func TestQuitCommand(t *testing.T) {
	cmd := QuitCommand()(CommandContext{})
	require.NotNil(t, cmd)
	assert.Equal(t, types.QuitRequestMsg{}, cmd())
}
