package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEvent_Handle(t *testing.T) {
	ev := NewKeyEvent("t")

	assert.Equal(t, "t", ev.Key)
	assert.False(t, ev.Handled())

	ev.Handle()
	assert.True(t, ev.Handled())
}
