package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/resourcecmd/internal/components"
	"github.com/renato0307/resourcecmd/internal/components/commandbar"
	"github.com/renato0307/resourcecmd/internal/host"
	"github.com/renato0307/resourcecmd/internal/types"
)

// teaHost adapts the Bubble Tea program to the host contracts. Calls made
// during Update queue tea.Cmds that the model drains before returning.
// Everything runs on the update goroutine.
type teaHost struct {
	bar     *commandbar.CommandBar
	notices *components.UserMessage

	pending []tea.Cmd

	shortcuts    []string // chord names in registration order
	chords       map[string]key.Binding
	handlers     map[string][]subscription[host.ShortcutHandler]
	interceptors []subscription[host.KeyListener]
	timers       map[int]func()
	nextID       int
}

var (
	_ host.Host           = (*teaHost)(nil)
	_ host.KeyInterceptor = (*teaHost)(nil)
	_ host.Scheduler      = (*teaHost)(nil)
)

type subscription[T any] struct {
	id int
	fn T
}

func newTeaHost(notices *components.UserMessage) *teaHost {
	return &teaHost{
		notices:  notices,
		chords:   map[string]key.Binding{},
		handlers: map[string][]subscription[host.ShortcutHandler]{},
		timers:   map[int]func(){},
	}
}

func (h *teaHost) id() int {
	h.nextID++
	return h.nextID
}

func (h *teaHost) queue(cmd tea.Cmd) {
	if cmd != nil {
		h.pending = append(h.pending, cmd)
	}
}

// drain returns every queued command as one batch.
func (h *teaHost) drain() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

func (h *teaHost) OpenPalette() {
	h.bar.Open()
}

func (h *teaHost) PrefillPalette(text string) {
	h.bar.Prefill(text)
}

func (h *teaHost) ShowTransientNotice(message string) {
	h.queue(h.notices.Show(message, types.MessageTypeInfo))
}

func (h *teaHost) OpenExternalResource(url string) {
	h.queue(func() tea.Msg {
		return types.OpenResourceMsg{URL: url}
	})
}

func (h *teaHost) RegisterGlobalShortcut(name string, chord key.Binding) {
	if _, ok := h.chords[name]; !ok {
		h.shortcuts = append(h.shortcuts, name)
	}
	h.chords[name] = chord
}

func (h *teaHost) OnShortcutFired(name string, handler host.ShortcutHandler) func() {
	id := h.id()
	h.handlers[name] = append(h.handlers[name], subscription[host.ShortcutHandler]{id: id, fn: handler})
	return func() {
		h.handlers[name] = without(h.handlers[name], id)
	}
}

func (h *teaHost) InterceptKeys(listener host.KeyListener) func() {
	id := h.id()
	h.interceptors = append(h.interceptors, subscription[host.KeyListener]{id: id, fn: listener})
	return func() {
		h.interceptors = without(h.interceptors, id)
	}
}

// After schedules fn through tea.Tick. A cancelled or already fired timer
// ignores its tick.
func (h *teaHost) After(d time.Duration, fn func()) func() {
	id := h.id()
	h.timers[id] = fn
	h.queue(tea.Tick(d, func(time.Time) tea.Msg {
		return types.TimerFiredMsg{ID: id}
	}))
	return func() {
		delete(h.timers, id)
	}
}

// fire runs the timer with id if it is still scheduled.
func (h *teaHost) fire(id int) bool {
	fn, ok := h.timers[id]
	if !ok {
		return false
	}
	delete(h.timers, id)
	fn()
	return true
}

// intercept delivers k to the capture-phase listeners, stopping at the
// first that handles it.
func (h *teaHost) intercept(k string) bool {
	ev := host.NewKeyEvent(k)
	for _, sub := range append([]subscription[host.KeyListener](nil), h.interceptors...) {
		sub.fn(ev)
		if ev.Handled() {
			return true
		}
	}
	return false
}

// shortcut fires the first registered chord matching msg. A matched chord
// consumes the key even without subscribers.
func (h *teaHost) shortcut(msg tea.KeyMsg) bool {
	for _, name := range h.shortcuts {
		if !key.Matches(msg, h.chords[name]) {
			continue
		}
		ev := host.NewKeyEvent(msg.String())
		for _, sub := range append([]subscription[host.ShortcutHandler](nil), h.handlers[name]...) {
			sub.fn(ev)
		}
		return true
	}
	return false
}

func without[T any](subs []subscription[T], id int) []subscription[T] {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
