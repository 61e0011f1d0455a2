// Package browser opens resource URLs outside the terminal.
package browser

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Opener opens URLs in the system browser, falling back to copying the URL
// to the clipboard when no browser can be started.
type Opener struct {
	open func(url string) error
	copy func(text string) error
}

// NewOpener creates an opener backed by the system browser and clipboard.
func NewOpener() *Opener {
	// xdg-open and friends write to the terminal, which corrupts the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &Opener{
		open: browser.OpenURL,
		copy: clipboard.WriteAll,
	}
}

// Open opens url and returns a user-facing description of what happened.
func (o *Opener) Open(url string) (string, error) {
	openErr := o.open(url)
	if openErr == nil {
		return fmt.Sprintf("Opened %s", url), nil
	}

	if err := o.copy(url); err != nil {
		return "", fmt.Errorf("failed to open browser (%v) and copy to clipboard: %w", openErr, err)
	}
	return fmt.Sprintf("No browser available, URL copied to clipboard: %s", url), nil
}
