package activator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/resourcecmd/internal/resources"
)

func testRules() Rules {
	return Rules{Catalog: resources.Default(), Timeout: DefaultTimeout}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "armed", StateArmed.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestStep_ChordArms(t *testing.T) {
	m, effects := Step(Machine{}, ChordEvent{}, testRules())

	assert.Equal(t, StateArmed, m.State)
	assert.Equal(t, uint64(1), m.Generation)
	require.Len(t, effects, 2)
	assert.Equal(t, NoticeEffect{Message: ArmedNotice(resources.Default())}, effects[0])
	assert.Equal(t, StartTimerEffect{Generation: 1, After: 3 * time.Second}, effects[1])
}

func TestStep_RearmCancelsFirst(t *testing.T) {
	m, _ := Step(Machine{}, ChordEvent{}, testRules())
	m, effects := Step(m, ChordEvent{}, testRules())

	assert.Equal(t, StateArmed, m.State)
	assert.Equal(t, uint64(2), m.Generation)
	require.Len(t, effects, 3)
	assert.Equal(t, CancelTimerEffect{}, effects[0])
	assert.IsType(t, NoticeEffect{}, effects[1])
	assert.Equal(t, StartTimerEffect{Generation: 2, After: DefaultTimeout}, effects[2])
}

func TestStep_Timeout(t *testing.T) {
	armed := Machine{State: StateArmed, Generation: 3}

	tests := []struct {
		name  string
		start Machine
		ev    TimeoutEvent
		want  State
	}{
		{name: "current generation disarms", start: armed, ev: TimeoutEvent{Generation: 3}, want: StateIdle},
		{name: "stale generation ignored", start: armed, ev: TimeoutEvent{Generation: 2}, want: StateArmed},
		{name: "idle stays idle", start: Machine{Generation: 3}, ev: TimeoutEvent{Generation: 3}, want: StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, effects := Step(tt.start, tt.ev, testRules())
			assert.Equal(t, tt.want, m.State)
			assert.Equal(t, tt.start.Generation, m.Generation)
			assert.Empty(t, effects, "timeouts are silent")
		})
	}
}

func TestStep_KeyResolves(t *testing.T) {
	for _, r := range resources.Default().All() {
		for _, k := range []string{r.Key, strings.ToUpper(r.Key)} {
			t.Run(r.Name+"/"+k, func(t *testing.T) {
				m, effects := Step(Machine{State: StateArmed, Generation: 1}, KeyPressEvent{Key: k}, testRules())

				assert.Equal(t, StateIdle, m.State)
				assert.Equal(t, []Effect{
					CancelTimerEffect{},
					ConsumeKeyEffect{},
					OpenPaletteEffect{},
					PrefillEffect{Text: r.Prefix},
					NoticeEffect{Message: ResolvedNotice(r)},
				}, effects)
			})
		}
	}
}

func TestStep_UnknownKeyWhileArmed(t *testing.T) {
	start := Machine{State: StateArmed, Generation: 4}

	for _, k := range []string{"z", "enter", "alt+t", "1", " "} {
		m, effects := Step(start, KeyPressEvent{Key: k}, testRules())
		assert.Equal(t, start, m, "key %q", k)
		assert.Empty(t, effects, "key %q", k)
	}
}

func TestStep_KeyWhileIdle(t *testing.T) {
	for _, k := range []string{"t", "b", "z"} {
		m, effects := Step(Machine{}, KeyPressEvent{Key: k}, testRules())
		assert.Equal(t, Machine{}, m)
		assert.Empty(t, effects)
	}
}

func TestStep_DefaultTimeoutWhenUnset(t *testing.T) {
	_, effects := Step(Machine{}, ChordEvent{}, Rules{Catalog: resources.Default()})

	require.Len(t, effects, 2)
	assert.Equal(t, StartTimerEffect{Generation: 1, After: DefaultTimeout}, effects[1])
}

func TestArmedNotice(t *testing.T) {
	notice := ArmedNotice(resources.Default())

	assert.Equal(t,
		"Press a key to search: b Block Editor, t Theme, p Plugin, r REST API, l Learn WordPress, v WordPress TV",
		notice)
}

func TestResolvedNotice(t *testing.T) {
	r, ok := resources.Default().ByKey("t")
	require.True(t, ok)

	assert.Equal(t, "Type your search term and press Enter to search Theme Handbook", ResolvedNotice(r))

	site, ok := resources.Default().ByKey("l")
	require.True(t, ok)
	assert.Equal(t, "Type your search term and press Enter to search Learn WordPress", ResolvedNotice(site))
}
