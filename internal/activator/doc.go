// Package activator implements the two-step resource shortcut.
//
// Pressing the chord (alt+h by default) arms the activator and shows the
// available keys. Pressing one of those keys within the timeout opens the
// palette pre-filled with the resource prefix, so the user only has to type
// the query and press enter.
//
// # Structure
//
// The decision logic is a pure two-state machine:
//
//	m, effects := Step(m, ChordEvent{}, rules)
//
// Step never touches the host. The Activator type owns one Machine and
// applies the returned effects: it shows notices, drives the palette,
// schedules and cancels the countdown and consumes key events.
//
// # Timer generations
//
// Every countdown carries the generation it was started with. Re-arming
// cancels the pending countdown and starts a new generation, and a timeout
// for any generation other than the current one is ignored. A stale timer
// can therefore never disarm a freshly re-armed machine.
package activator
