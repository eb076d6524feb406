package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	clock := NewFrameClock(mock, 250*time.Millisecond)

	dt, ft := clock.Tick()
	assert.Equal(t, 0.0, dt)
	assert.Equal(t, 0.0, ft)

	mock.Advance(16 * time.Millisecond)
	dt, ft = clock.Tick()
	assert.InDelta(t, 0.016, dt, 1e-12)
	assert.InDelta(t, 0.016, ft, 1e-12)

	// Long stalls are capped for dt but frame time stays absolute
	mock.Advance(2 * time.Second)
	dt, ft = clock.Tick()
	assert.InDelta(t, 0.25, dt, 1e-12)
	assert.InDelta(t, 2.016, ft, 1e-12)

	dt, _ = clock.Tick()
	assert.Equal(t, 0.0, dt)
	assert.Equal(t, mock.Now(), clock.Now())
}

func TestFrameClockNegativeDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	clock := NewFrameClock(mock, 0)
	clock.Tick()

	mock.Advance(-time.Second)
	dt, _ := clock.Tick()
	assert.Equal(t, 0.0, dt)
}

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()
	a := p.Now()
	b := p.Now()
	assert.False(t, b.Before(a))
}
