package commandbar

import "strings"

// History remembers executed palette inputs, most recent last.
type History struct {
	entries []string
	limit   int
	index   int // Current position in history (-1 means not navigating)
}

// NewHistory creates a history holding at most limit entries.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = MaxHistory
	}
	return &History{
		entries: []string{},
		limit:   limit,
		index:   -1,
	}
}

// Add records an input. Blank inputs are ignored and a repeated input moves
// to the most recent position instead of being stored twice.
func (h *History) Add(input string) {
	h.index = -1

	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	for i, e := range h.entries {
		if e == input {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}

	h.entries = append(h.entries, input)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// NavigateUp moves to an older entry.
// Returns the entry at the new position and whether navigation succeeded.
func (h *History) NavigateUp() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	if h.index == -1 {
		h.index = len(h.entries) - 1
	} else if h.index > 0 {
		h.index--
	}

	return h.entries[h.index], true
}

// NavigateDown moves to a newer entry. Moving past the most recent entry
// ends navigation and returns false.
func (h *History) NavigateDown() (string, bool) {
	if h.index == -1 {
		return "", false
	}

	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index], true
	}

	h.index = -1
	return "", false
}

// Navigating reports whether an entry is currently being browsed.
func (h *History) Navigating() bool {
	return h.index != -1
}

// Reset resets the history navigation index.
func (h *History) Reset() {
	h.index = -1
}

// Entries returns a copy of the stored inputs, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Size returns the number of entries in history.
func (h *History) Size() int {
	return len(h.entries)
}
