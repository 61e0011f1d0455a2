package activator

import (
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/resourcecmd/internal/resources"
)

// DefaultTimeout is how long the armed state lasts without a key press.
const DefaultTimeout = 3 * time.Second

// State is the activator mode.
type State int

const (
	StateIdle  State = iota // waiting for the chord
	StateArmed              // chord seen, waiting for a resource key
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	default:
		return "unknown"
	}
}

// Machine is the complete activator state.
type Machine struct {
	State State
	// Generation identifies the countdown started by the latest arm.
	Generation uint64
}

// Rules are the fixed inputs of every transition.
type Rules struct {
	Catalog *resources.Catalog
	Timeout time.Duration
}

// Event is an input to Step.
type Event interface {
	event()
}

// ChordEvent is the global chord firing.
type ChordEvent struct{}

// KeyPressEvent is any key press seen in the capture phase.
type KeyPressEvent struct {
	Key string
}

// TimeoutEvent is a countdown elapsing.
type TimeoutEvent struct {
	Generation uint64
}

func (ChordEvent) event()    {}
func (KeyPressEvent) event() {}
func (TimeoutEvent) event()  {}

// Effect is a side effect requested by Step.
type Effect interface {
	effect()
}

// NoticeEffect shows a transient notice.
type NoticeEffect struct {
	Message string
}

// StartTimerEffect starts the countdown for Generation.
type StartTimerEffect struct {
	Generation uint64
	After      time.Duration
}

// CancelTimerEffect cancels the pending countdown, if any.
type CancelTimerEffect struct{}

// OpenPaletteEffect opens the command palette.
type OpenPaletteEffect struct{}

// PrefillEffect sets the palette search text.
type PrefillEffect struct {
	Text string
}

// ConsumeKeyEffect marks the triggering key event as handled.
type ConsumeKeyEffect struct{}

func (NoticeEffect) effect()      {}
func (StartTimerEffect) effect()  {}
func (CancelTimerEffect) effect() {}
func (OpenPaletteEffect) effect() {}
func (PrefillEffect) effect()     {}
func (ConsumeKeyEffect) effect()  {}

// Step applies ev to m and returns the new machine and the effects to run,
// in order. It is total: unknown or irrelevant events leave m unchanged and
// return no effects.
func Step(m Machine, ev Event, rules Rules) (Machine, []Effect) {
	switch ev := ev.(type) {
	case ChordEvent:
		return arm(m, rules)

	case TimeoutEvent:
		if m.State != StateArmed || ev.Generation != m.Generation {
			return m, nil
		}
		m.State = StateIdle
		return m, nil

	case KeyPressEvent:
		if m.State != StateArmed {
			return m, nil
		}
		r, ok := rules.Catalog.ByKey(strings.ToLower(ev.Key))
		if !ok {
			return m, nil
		}
		m.State = StateIdle
		return m, []Effect{
			CancelTimerEffect{},
			ConsumeKeyEffect{},
			OpenPaletteEffect{},
			PrefillEffect{Text: r.Prefix},
			NoticeEffect{Message: ResolvedNotice(r)},
		}
	}

	return m, nil
}

func arm(m Machine, rules Rules) (Machine, []Effect) {
	var effects []Effect
	if m.State == StateArmed {
		effects = append(effects, CancelTimerEffect{})
	}

	timeout := rules.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	m.State = StateArmed
	m.Generation++
	effects = append(effects,
		NoticeEffect{Message: ArmedNotice(rules.Catalog)},
		StartTimerEffect{Generation: m.Generation, After: timeout},
	)
	return m, effects
}

// ArmedNotice lists every activation key and its resource.
func ArmedNotice(catalog *resources.Catalog) string {
	parts := []string{}
	for _, r := range catalog.All() {
		parts = append(parts, r.Key+" "+r.Name)
	}
	return "Press a key to search: " + strings.Join(parts, ", ")
}

// ResolvedNotice tells the user how to finish a search of r.
func ResolvedNotice(r resources.Resource) string {
	return fmt.Sprintf("Type your search term and press Enter to search %s", r.DisplayName())
}
