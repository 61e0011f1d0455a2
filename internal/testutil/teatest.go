// Package testutil runs Bubble Tea programs headless for end-to-end tests.
package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestProgram wraps a Bubble Tea program for testing
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	t       *testing.T
}

// syncBuffer is written by the program goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// blockingInput never yields bytes; keys are injected with Send.
type blockingInput struct {
	done chan struct{}
}

func (in *blockingInput) Read(p []byte) (int, error) {
	<-in.done
	return 0, io.EOF
}

// NewTestProgram starts model with controlled I/O and sends an initial
// window size. The program is stopped when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	input := &blockingInput{done: make(chan struct{})}

	p := tea.NewProgram(
		model,
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		t:       t,
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		if _, err := p.Run(); err != nil {
			t.Logf("Program error: %v", err)
		}
	}()

	t.Cleanup(func() {
		p.Quit()
		close(input.done)
		<-finished
	})

	// Give the program time to start
	time.Sleep(50 * time.Millisecond)
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(20 * time.Millisecond) // Give time for message to process
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			tp.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// SendAlt sends an alt+rune chord
func (tp *TestProgram) SendAlt(r rune) {
	tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true})
}

// Output returns the current output buffer content
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// AssertEventually fails the test if needle does not appear within timeout.
func (tp *TestProgram) AssertEventually(needle string, timeout time.Duration) {
	tp.t.Helper()

	if !tp.WaitForOutput(needle, timeout) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", needle, tp.Output())
	}
}

// Quit stops the program
func (tp *TestProgram) Quit() {
	tp.program.Quit()
}
