package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/resourcecmd/internal/activator"
	"github.com/renato0307/resourcecmd/internal/keyboard"
	"github.com/renato0307/resourcecmd/internal/resources"
	"github.com/renato0307/resourcecmd/internal/types"
	"github.com/renato0307/resourcecmd/internal/ui"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) (string, error) {
	f.opened = append(f.opened, url)
	if f.err != nil {
		return "", f.err
	}
	return "Opened " + url, nil
}

func newTestModel(t *testing.T, opts ...Option) (Model, *fakeOpener) {
	t.Helper()
	opener := &fakeOpener{}
	opts = append([]Option{WithOpener(opener)}, opts...)
	return NewModel(resources.Default(), ui.ThemeCharm(), opts...), opener
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		if r == ' ' {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// collect runs cmd and every command batched inside it. Only use it when no
// tea.Tick is pending, since ticks block for their duration.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func chord() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h"), Alt: true}
}

func letter(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func timerIDs(m Model) []int {
	var ids []int
	for id := range m.host.timers {
		ids = append(ids, id)
	}
	return ids
}

func TestModel_PaletteShortcutOpensPalette(t *testing.T) {
	m, _ := newTestModel(t)
	require.False(t, m.commandBar.IsOpen())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.True(t, m.commandBar.IsOpen())
	assert.Contains(t, m.View(), "Search Block Editor Handbook")
}

func TestModel_ShortcutSuggestionOpensBrowser(t *testing.T) {
	m, opener := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = typeText(t, m, "blocks !b")

	assert.Contains(t, m.View(), `Search Block Editor Handbook: "blocks"`)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	openMsg, ok := msgs[0].(types.OpenResourceMsg)
	require.True(t, ok)
	assert.Equal(t, "https://developer.wordpress.org/block-editor/?s=blocks", openMsg.URL)
	assert.False(t, m.commandBar.IsOpen())

	m, cmd = update(t, m, openMsg)
	assert.True(t, m.userMessage.IsLoadingMessage())
	assert.Contains(t, m.userMessage.Message(), "Opening https://developer.wordpress.org/block-editor/?s=blocks")

	var status *types.StatusMsg
	for _, msg := range collect(cmd) {
		if s, ok := msg.(types.StatusMsg); ok {
			status = &s
		}
	}
	require.NotNil(t, status)
	assert.Equal(t, types.MessageTypeSuccess, status.Type)
	assert.Equal(t, []string{openMsg.URL}, opener.opened)

	m, _ = update(t, m, *status)
	assert.False(t, m.userMessage.IsLoadingMessage())
	assert.Equal(t, "Opened "+openMsg.URL, m.userMessage.Message())
}

func TestModel_OpenResourceFailure(t *testing.T) {
	m, opener := newTestModel(t)
	opener.err = errors.New("failed to open browser and copy to clipboard")

	_, cmd := update(t, m, types.OpenResourceMsg{URL: "https://wordpress.tv/?s=x"})

	var status *types.StatusMsg
	for _, msg := range collect(cmd) {
		if s, ok := msg.(types.StatusMsg); ok {
			status = &s
		}
	}
	require.NotNil(t, status)
	assert.Equal(t, types.MessageTypeError, status.Type)
	assert.Contains(t, status.Message, "failed to open browser")
}

func TestModel_OpenResourceWithoutOpener(t *testing.T) {
	m := NewModel(resources.Default(), ui.ThemeCharm())

	_, cmd := update(t, m, types.OpenResourceMsg{URL: "https://wordpress.tv/?s=x"})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	status, ok := msgs[0].(types.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, types.MessageTypeError, status.Type)
}

func TestModel_TwoStepActivation(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, chord())
	assert.Equal(t, activator.StateArmed, m.activator.State())
	assert.Contains(t, m.userMessage.Message(), "Press a key to search")
	assert.Len(t, timerIDs(m), 1)
	assert.Contains(t, m.View(), "waiting for resource key")

	m, _ = update(t, m, letter('t'))
	assert.Equal(t, activator.StateIdle, m.activator.State())
	assert.True(t, m.commandBar.IsOpen())
	assert.Equal(t, "!t", m.commandBar.Input())
	assert.Empty(t, timerIDs(m), "countdown cancelled")
	assert.Equal(t, "Type your search term and press Enter to search Theme Handbook", m.userMessage.Message())
	assert.NotContains(t, m.View(), "waiting for resource key")
}

func TestModel_TwoStepSearchOpensResource(t *testing.T) {
	m, opener := newTestModel(t)

	m, _ = update(t, m, chord())
	m, _ = update(t, m, letter('t'))
	m = typeText(t, m, "blocks")
	assert.Equal(t, "blocks !t", m.commandBar.Input())
	assert.Contains(t, m.View(), `Search Theme Handbook: "blocks"`)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	openMsg, ok := msgs[0].(types.OpenResourceMsg)
	require.True(t, ok)
	assert.Equal(t, "https://developer.wordpress.org/themes/?s=blocks", openMsg.URL)

	_, cmd = update(t, m, openMsg)
	collect(cmd)
	assert.Equal(t, []string{"https://developer.wordpress.org/themes/?s=blocks"}, opener.opened)
}

func TestModel_ActivationKeyIsConsumed(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = typeText(t, m, "abc")

	m, _ = update(t, m, chord())
	m, _ = update(t, m, letter('B'))

	assert.Equal(t, "!b", m.commandBar.Input(), "the letter replaces the text instead of being typed")
}

func TestModel_ArmedUnknownKeyFallsThrough(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})

	m, _ = update(t, m, chord())
	m, _ = update(t, m, letter('x'))

	assert.Equal(t, activator.StateArmed, m.activator.State())
	assert.Equal(t, "x", m.commandBar.Input(), "palette still receives the key")
	assert.Len(t, timerIDs(m), 1)
}

func TestModel_ActivationTimeout(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, chord())
	ids := timerIDs(m)
	require.Len(t, ids, 1)
	notice := m.userMessage.Message()

	m, _ = update(t, m, types.TimerFiredMsg{ID: ids[0]})
	assert.Equal(t, activator.StateIdle, m.activator.State())
	assert.Equal(t, notice, m.userMessage.Message(), "timeout is silent")

	m, _ = update(t, m, letter('t'))
	assert.False(t, m.commandBar.IsOpen())
}

func TestModel_RearmIgnoresStaleTick(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, chord())
	first := timerIDs(m)
	require.Len(t, first, 1)

	m, _ = update(t, m, chord())
	second := timerIDs(m)
	require.Len(t, second, 1)
	require.NotEqual(t, first[0], second[0])

	m, _ = update(t, m, types.TimerFiredMsg{ID: first[0]})
	assert.Equal(t, activator.StateArmed, m.activator.State(), "stale tick ignored")

	m, _ = update(t, m, types.TimerFiredMsg{ID: second[0]})
	assert.Equal(t, activator.StateIdle, m.activator.State())
}

func TestModel_ResourceCommandHint(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = typeText(t, m, "REST API")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.commandBar.IsOpen())
	assert.Equal(t, `Type your search term and add "!r" to search`, m.userMessage.Message())
}

func TestModel_StaleNoticeClearIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, types.InfoMsg("first"))
	firstID := m.userMessage.ID()
	m, _ = update(t, m, types.InfoMsg("second"))

	m, _ = update(t, m, types.ClearStatusMsg{MessageID: firstID})
	assert.Equal(t, "second", m.userMessage.Message())

	m, _ = update(t, m, types.ClearStatusMsg{MessageID: m.userMessage.ID()})
	assert.Equal(t, "", m.userMessage.Message())
}

func TestModel_PaletteMessages(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, types.OpenPaletteMsg{})
	m, _ = update(t, m, types.PrefillPaletteMsg{Text: "hooks !p"})

	assert.True(t, m.commandBar.IsOpen())
	assert.Equal(t, "hooks !p", m.commandBar.Input())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Contains(t, collect(cmd), tea.Msg(tea.QuitMsg{}))

	// Unmounted on quit: the chord no longer arms
	m, _ = update(t, m, chord())
	assert.Equal(t, activator.StateIdle, m.activator.State())
}

func TestModel_QuitCommandUnmounts(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = typeText(t, m, "quit")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	require.Equal(t, types.QuitRequestMsg{}, msgs[0])

	m, cmd = update(t, m, msgs[0])
	assert.Contains(t, collect(cmd), tea.Msg(tea.QuitMsg{}))

	m, _ = update(t, m, chord())
	assert.Equal(t, activator.StateIdle, m.activator.State())
}

func TestModel_CustomKeysAndTimeout(t *testing.T) {
	keys := keyboard.Default().Merge(keyboard.Keys{ResourceChord: "ctrl+g"})
	m, _ := newTestModel(t, WithKeys(keys), WithActivatorTimeout(time.Second), WithNoticeDuration(time.Second))

	m, _ = update(t, m, chord())
	assert.Equal(t, activator.StateIdle, m.activator.State())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, activator.StateArmed, m.activator.State())
}

func TestModel_ViewFillsWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 30)
	assert.Contains(t, view, AppName)
	assert.Contains(t, view, "Learning resources")
	assert.Contains(t, view, "ctrl+p palette")
}
