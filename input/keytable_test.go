package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyTableLookup(t *testing.T) {
	keys := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"accelerate", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionAccelerate},
		{"decelerate", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionDecelerate},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRight},
		{"down climbs", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionClimb},
		{"up falls", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionFall},
		{"space fires", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionFire},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"help", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), ActionToggleHelp},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionToggleMute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Lookup(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := keys.Lookup(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.False(t, ok)
}

func TestKeyTableBind(t *testing.T) {
	keys := DefaultKeyTable()

	require.NoError(t, keys.Bind("fire", []string{"f", "enter"}))
	got, ok := keys.Lookup(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, ActionFire, got)

	got, ok = keys.Lookup(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, ActionFire, got)

	// Binding to none removes the key
	require.NoError(t, keys.Bind("none", []string{"q"}))
	_, ok = keys.Lookup(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.False(t, ok)

	assert.Error(t, keys.Bind("loop", []string{"l"}))
	assert.Error(t, keys.Bind("fire", []string{"pagedown"}))
}

func TestBindingsKeepInsertionOrder(t *testing.T) {
	keys := NewKeyTable()
	keys.Set(Key{Code: tcell.KeyRune, Rune: 'b'}, ActionLeft)
	keys.Set(Key{Code: tcell.KeyRune, Rune: 'a'}, ActionRight)
	keys.Set(Key{Code: tcell.KeyUp}, ActionClimb)

	b := keys.Bindings()
	require.Len(t, b, 3)
	assert.Equal(t, "b", b[0].Key.String())
	assert.Equal(t, "a", b[1].Key.String())
	assert.Equal(t, "up", b[2].Key.String())
	assert.Equal(t, "climb", b[2].Action.String())
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Space")
	require.NoError(t, err)
	assert.Equal(t, Key{Code: tcell.KeyRune, Rune: ' '}, k)
	assert.Equal(t, "space", k.String())

	k, err = ParseKey("ESC")
	require.NoError(t, err)
	assert.Equal(t, Key{Code: tcell.KeyEscape}, k)

	_, err = ParseKey("abc")
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("toggle_mute")
	require.NoError(t, err)
	assert.Equal(t, ActionToggleMute, a)
	assert.Equal(t, "toggle_mute", a.String())
	assert.True(t, ActionFire.IsFlag())
	assert.False(t, ActionQuit.IsFlag())

	_, err = ParseAction("warp")
	assert.Error(t, err)
}
