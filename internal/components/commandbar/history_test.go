package commandbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Add(t *testing.T) {
	h := NewHistory(3)

	h.Add("")
	h.Add("   ")
	assert.Equal(t, 0, h.Size())

	h.Add("a !b")
	h.Add("b !t")
	h.Add("a !b")
	assert.Equal(t, []string{"b !t", "a !b"}, h.Entries(), "repeat moves to the end")

	h.Add("c !p")
	h.Add("d !r")
	assert.Equal(t, []string{"a !b", "c !p", "d !r"}, h.Entries(), "oldest dropped at limit")
}

func TestHistory_DefaultLimit(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < MaxHistory+5; i++ {
		h.Add(string(rune('a'+i%26)) + string(rune('0'+i/26)))
	}
	assert.Equal(t, MaxHistory, h.Size())
}

func TestHistory_Navigate(t *testing.T) {
	h := NewHistory(10)

	_, ok := h.NavigateUp()
	assert.False(t, ok, "empty history")

	h.Add("one")
	h.Add("two")

	entry, ok := h.NavigateUp()
	assert.True(t, ok)
	assert.Equal(t, "two", entry)
	assert.True(t, h.Navigating())

	entry, _ = h.NavigateUp()
	assert.Equal(t, "one", entry)

	entry, _ = h.NavigateUp()
	assert.Equal(t, "one", entry, "stays at oldest")

	entry, ok = h.NavigateDown()
	assert.True(t, ok)
	assert.Equal(t, "two", entry)

	_, ok = h.NavigateDown()
	assert.False(t, ok)
	assert.False(t, h.Navigating())

	h.NavigateUp()
	h.Reset()
	assert.False(t, h.Navigating())
}
