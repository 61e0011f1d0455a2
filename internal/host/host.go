// Package host defines the narrow contract between the resource search
// extension and the command palette application hosting it.
//
// The extension never reaches into palette, notice or keyboard internals.
// Everything it needs is expressed as the interfaces below, so the matcher
// and the activator can be exercised with stub collaborators.
package host

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
)

// Palette controls the command palette UI.
type Palette interface {
	// OpenPalette makes the palette visible.
	OpenPalette()
	// PrefillPalette replaces the palette search text.
	PrefillPalette(text string)
}

// Notifier shows short-lived status messages.
type Notifier interface {
	// ShowTransientNotice displays a dismissible, auto-expiring message.
	ShowTransientNotice(message string)
}

// ResourceOpener opens external URLs.
type ResourceOpener interface {
	// OpenExternalResource opens url in a new top-level browsing context.
	OpenExternalResource(url string)
}

// ShortcutHandler is invoked when a registered chord fires.
type ShortcutHandler func(ev *KeyEvent)

// Shortcuts is the host's global shortcut registry.
type Shortcuts interface {
	// RegisterGlobalShortcut declares a named chord. Registering the same
	// name again replaces the chord.
	RegisterGlobalShortcut(name string, chord key.Binding)
	// OnShortcutFired subscribes handler to the named chord. The returned
	// func removes the subscription.
	OnShortcutFired(name string, handler ShortcutHandler) (remove func())
}

// Host bundles every capability the extension uses.
type Host interface {
	Palette
	Notifier
	ResourceOpener
	Shortcuts
}

// KeyListener receives key events.
type KeyListener func(ev *KeyEvent)

// KeyInterceptor delivers key events in the capture phase, before the
// palette, shortcuts or any other handler sees them.
type KeyInterceptor interface {
	InterceptKeys(listener KeyListener) (remove func())
}

// Scheduler runs fn once after d unless cancelled first. fn runs on the
// same goroutine that delivers key events.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// KeyEvent is a single key press as seen by listeners.
type KeyEvent struct {
	// Key is the host's string form of the key ("t", "alt+h", "enter").
	Key string

	handled bool
}

// NewKeyEvent creates an unhandled event for key.
func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{Key: key}
}

// Handle marks the event as consumed. The host stops propagation and
// suppresses the default action of a handled event.
func (e *KeyEvent) Handle() {
	e.handled = true
}

// Handled reports whether a listener consumed the event.
func (e *KeyEvent) Handled() bool {
	return e.handled
}
