package activator

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/resourcecmd/internal/host"
	"github.com/renato0307/resourcecmd/internal/logging"
	"github.com/renato0307/resourcecmd/internal/resources"
)

// ShortcutName is the name the chord is registered under.
const ShortcutName = "search-resources/two-step"

// DefaultChord returns the default arming chord.
func DefaultChord() key.Binding {
	return key.NewBinding(
		key.WithKeys("alt+h"),
		key.WithHelp("alt+h", "search a resource"),
	)
}

// Activator applies Step to the host. It is not safe for concurrent use;
// the host delivers keys and timer callbacks on one goroutine.
type Activator struct {
	host      host.Host
	keys      host.KeyInterceptor
	scheduler host.Scheduler
	rules     Rules
	chord     key.Binding
	logger    *logging.Logger

	machine     Machine
	cancelTimer func()
	listeners   []func()
	mounted     bool
}

// Option configures an Activator.
type Option func(*Activator)

// WithChord sets the arming chord.
func WithChord(chord key.Binding) Option {
	return func(a *Activator) {
		a.chord = chord
	}
}

// WithTimeout sets how long the armed state lasts.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Activator) {
		if timeout > 0 {
			a.rules.Timeout = timeout
		}
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *logging.Logger) Option {
	return func(a *Activator) {
		a.logger = logger
	}
}

// New creates an unmounted activator.
func New(h host.Host, keys host.KeyInterceptor, scheduler host.Scheduler, catalog *resources.Catalog, opts ...Option) *Activator {
	a := &Activator{
		host:      h,
		keys:      keys,
		scheduler: scheduler,
		rules:     Rules{Catalog: catalog, Timeout: DefaultTimeout},
		chord:     DefaultChord(),
		logger:    logging.Component("activator"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mount registers the chord and the capture-phase key listener.
// Mounting twice is a no-op.
func (a *Activator) Mount() {
	if a.mounted {
		return
	}
	a.host.RegisterGlobalShortcut(ShortcutName, a.chord)
	a.listeners = append(a.listeners,
		a.host.OnShortcutFired(ShortcutName, a.onChord),
		a.keys.InterceptKeys(a.onKey),
	)
	a.mounted = true
}

// Unmount cancels any pending countdown, disarms, and removes every
// listener registered by Mount.
func (a *Activator) Unmount() {
	if !a.mounted {
		return
	}
	a.stopTimer()
	for _, remove := range a.listeners {
		remove()
	}
	a.listeners = nil
	a.machine.State = StateIdle
	a.mounted = false
}

// State returns the current mode.
func (a *Activator) State() State {
	return a.machine.State
}

// Chord returns the arming chord.
func (a *Activator) Chord() key.Binding {
	return a.chord
}

func (a *Activator) onChord(ev *host.KeyEvent) {
	a.dispatch(ChordEvent{}, ev)
}

func (a *Activator) onKey(ev *host.KeyEvent) {
	if a.machine.State != StateArmed {
		return
	}
	a.dispatch(KeyPressEvent{Key: ev.Key}, ev)
}

func (a *Activator) dispatch(ev Event, keyEv *host.KeyEvent) {
	before := a.machine.State
	next, effects := Step(a.machine, ev, a.rules)
	a.machine = next

	if before != next.State {
		a.logger.Debug("transition",
			"from", before.String(),
			"to", next.State.String(),
			"event", fmt.Sprintf("%T", ev),
		)
	}

	for _, eff := range effects {
		a.apply(eff, keyEv)
	}
}

func (a *Activator) apply(eff Effect, keyEv *host.KeyEvent) {
	switch eff := eff.(type) {
	case NoticeEffect:
		a.host.ShowTransientNotice(eff.Message)
	case StartTimerEffect:
		a.stopTimer()
		generation := eff.Generation
		a.cancelTimer = a.scheduler.After(eff.After, func() {
			if generation == a.machine.Generation {
				a.cancelTimer = nil
			}
			a.dispatch(TimeoutEvent{Generation: generation}, nil)
		})
	case CancelTimerEffect:
		a.stopTimer()
	case OpenPaletteEffect:
		a.host.OpenPalette()
	case PrefillEffect:
		a.host.PrefillPalette(eff.Text)
	case ConsumeKeyEffect:
		if keyEv != nil {
			keyEv.Handle()
		}
	}
}

func (a *Activator) stopTimer() {
	if a.cancelTimer != nil {
		a.cancelTimer()
		a.cancelTimer = nil
	}
}
