package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/flanker/parameter"
)

func TestDebouncerFirstRefresh(t *testing.T) {
	d := NewDebouncer(parameter.StatusDebounceFrames)
	assert.Empty(t, d.Text())

	for i := 1; i <= 31; i++ {
		text, changed := d.Observe(true)
		assert.False(t, changed, "observation %d", i)
		assert.Empty(t, text)
	}

	text, changed := d.Observe(true)
	assert.True(t, changed)
	assert.Equal(t, parameter.StatusTextEdge, text)
	assert.Equal(t, parameter.StatusTextEdge, d.Text())
}

func TestDebouncerHoldsWithinWindow(t *testing.T) {
	d := NewDebouncer(parameter.StatusDebounceFrames)
	for i := 0; i < 32; i++ {
		d.Observe(false)
	}
	assert.Equal(t, parameter.StatusTextOK, d.Text())

	// Flapping input cannot change the label inside the window
	for i := 1; i <= 31; i++ {
		text, changed := d.Observe(i%2 == 0)
		assert.False(t, changed)
		assert.Equal(t, parameter.StatusTextOK, text)
	}

	text, changed := d.Observe(true)
	assert.True(t, changed)
	assert.Equal(t, parameter.StatusTextEdge, text)
}

func TestDebouncerRewritesSameText(t *testing.T) {
	d := NewDebouncer(2)
	changes := 0
	for i := 0; i < 12; i++ {
		if _, changed := d.Observe(false); changed {
			changes++
		}
	}
	// Window 2 refreshes on every fourth observation
	assert.Equal(t, 3, changes)
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Frames.Add(10)
	r.Explosions.Add(1)
	r.FPS.Set(59.5)

	c := r.Snapshot()
	assert.Equal(t, int64(10), c.Frames)
	assert.Equal(t, int64(1), c.Explosions)
	assert.Zero(t, c.Respawns)
	assert.Equal(t, 59.5, c.FPS)
}

func TestAtomicFloatZeroValue(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 0.0, f.Get())
	f.Set(-3.25)
	assert.Equal(t, -3.25, f.Get())
}
