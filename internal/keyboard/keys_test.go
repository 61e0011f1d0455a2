package keyboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	k := Default()
	assert.Equal(t, "ctrl+p", k.PaletteActivate)
	assert.Equal(t, "alt+h", k.ResourceChord)
	assert.Equal(t, "ctrl+c", k.Quit)
	assert.Equal(t, "esc", k.Back)
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := base.Merge(Keys{ResourceChord: "ctrl+g"})

	assert.Equal(t, "ctrl+g", merged.ResourceChord)
	assert.Equal(t, "ctrl+p", merged.PaletteActivate)
	assert.Equal(t, "alt+h", base.ResourceChord, "base must not change")
}

func TestNewBinding(t *testing.T) {
	tests := []struct {
		name     string
		chords   string
		wantKeys []string
		wantHelp string
		enabled  bool
	}{
		{name: "single", chords: "ctrl+p", wantKeys: []string{"ctrl+p"}, wantHelp: "ctrl+p", enabled: true},
		{name: "list", chords: "ctrl+p, ctrl+k", wantKeys: []string{"ctrl+p", "ctrl+k"}, wantHelp: "ctrl+p", enabled: true},
		{name: "empty", chords: " , ", enabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBinding(tt.chords, "help")
			assert.Equal(t, tt.enabled, b.Enabled())
			if tt.enabled {
				assert.Equal(t, tt.wantKeys, b.Keys())
				assert.Equal(t, tt.wantHelp, b.Help().Key)
			}
		})
	}
}

func TestBindings_MatchKeyMsg(t *testing.T) {
	b := Default().Bindings()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlP}, b.PaletteActivate))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h"), Alt: true}, b.ResourceChord))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, b.Back))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, b.Quit))
}
