// Package hosttest provides in-memory host collaborators for tests.
package hosttest

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/resourcecmd/internal/host"
)

// Host records every call made through the host.Host contract and keeps a
// working shortcut registry and key interceptor chain.
type Host struct {
	PaletteOpens int
	Prefills     []string
	Notices      []string
	Opened       []string

	chords       map[string]key.Binding
	handlers     map[string]map[int]host.ShortcutHandler
	interceptors map[int]host.KeyListener
	nextID       int
}

// NewHost creates an empty recording host.
func NewHost() *Host {
	return &Host{
		chords:       map[string]key.Binding{},
		handlers:     map[string]map[int]host.ShortcutHandler{},
		interceptors: map[int]host.KeyListener{},
	}
}

func (h *Host) OpenPalette() { h.PaletteOpens++ }

func (h *Host) PrefillPalette(text string) { h.Prefills = append(h.Prefills, text) }

func (h *Host) ShowTransientNotice(message string) { h.Notices = append(h.Notices, message) }

func (h *Host) OpenExternalResource(url string) { h.Opened = append(h.Opened, url) }

// RegisterGlobalShortcut stores the chord under name.
func (h *Host) RegisterGlobalShortcut(name string, chord key.Binding) {
	h.chords[name] = chord
}

// Chord returns the chord registered under name.
func (h *Host) Chord(name string) (key.Binding, bool) {
	b, ok := h.chords[name]
	return b, ok
}

// OnShortcutFired subscribes handler to name.
func (h *Host) OnShortcutFired(name string, handler host.ShortcutHandler) func() {
	if h.handlers[name] == nil {
		h.handlers[name] = map[int]host.ShortcutHandler{}
	}
	id := h.nextID
	h.nextID++
	h.handlers[name][id] = handler
	return func() { delete(h.handlers[name], id) }
}

// InterceptKeys adds a capture-phase listener.
func (h *Host) InterceptKeys(listener host.KeyListener) func() {
	id := h.nextID
	h.nextID++
	h.interceptors[id] = listener
	return func() { delete(h.interceptors, id) }
}

// Listeners returns the number of live interceptors and shortcut handlers.
func (h *Host) Listeners() int {
	n := len(h.interceptors)
	for _, hs := range h.handlers {
		n += len(hs)
	}
	return n
}

// FireShortcut invokes every handler subscribed to name.
func (h *Host) FireShortcut(name string) *host.KeyEvent {
	ev := host.NewKeyEvent(name)
	if b, ok := h.chords[name]; ok && len(b.Keys()) > 0 {
		ev.Key = b.Keys()[0]
	}
	for _, id := range sortedIDs(h.handlers[name]) {
		if handler, ok := h.handlers[name][id]; ok {
			handler(ev)
		}
	}
	return ev
}

// PressKey delivers k to the interceptors in registration order, stopping
// at the first one that handles it.
func (h *Host) PressKey(k string) *host.KeyEvent {
	ev := host.NewKeyEvent(k)
	for _, id := range sortedIDs(h.interceptors) {
		listener, ok := h.interceptors[id]
		if !ok {
			continue
		}
		listener(ev)
		if ev.Handled() {
			break
		}
	}
	return ev
}

// LastNotice returns the most recent notice or "".
func (h *Host) LastNotice() string {
	if len(h.Notices) == 0 {
		return ""
	}
	return h.Notices[len(h.Notices)-1]
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Scheduler is a manual clock. Timers fire only when Advance moves the
// clock past their deadline.
type Scheduler struct {
	now    time.Duration
	timers []*timer
}

type timer struct {
	at        time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run d after the current manual time.
func (s *Scheduler) After(d time.Duration, fn func()) func() {
	t := &timer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// Advance moves the clock forward by d, firing due timers in deadline order.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		next.fn()
	}
	s.now = target
}

// Pending returns the number of timers that have neither fired nor been
// cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDue(limit time.Duration) *timer {
	var next *timer
	for _, t := range s.timers {
		if t.fired || t.cancelled || t.at > limit {
			continue
		}
		if next == nil || t.at < next.at {
			next = t
		}
	}
	return next
}
