package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapSmooth(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 45, 45},
		{"lower bound kept", -180, -180},
		{"upper bound folds", 180, -180},
		{"overshoot kept", 181, -179},
		{"undershoot kept", -181, 179},
		{"multiple turns", 725, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WrapSmooth(tt.in, 180), 1e-9)
		})
	}
}

func TestWrapHard(t *testing.T) {
	assert.Equal(t, 10.0, WrapHard(10, 180))
	assert.Equal(t, -180.0, WrapHard(-180, 180))
	assert.Equal(t, -180.0, WrapHard(180, 180))
	assert.Equal(t, -180.0, WrapHard(200, 180))

	got := WrapHard(-180.5, 180)
	assert.Equal(t, PitchCeiling, got)
	assert.Less(t, got, 180.0)
	assert.Greater(t, got, 179.999)
}

func TestApproachZero(t *testing.T) {
	assert.InDelta(t, 0.9, ApproachZero(1, 0.1), 1e-12)
	assert.InDelta(t, -0.9, ApproachZero(-1, 0.1), 1e-12)
	assert.Equal(t, 0.0, ApproachZero(0.05, 0.1))
	assert.Equal(t, 0.0, ApproachZero(-0.05, 0.1))
	assert.Equal(t, 0.0, ApproachZero(0, 0.1))
}

func TestApproachZeroNeverOvershoots(t *testing.T) {
	a := 7.35
	prev := math.Abs(a)
	for i := 0; i < 200; i++ {
		a = ApproachZero(a, 0.1)
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, math.Abs(a), prev)
		prev = math.Abs(a)
	}
	assert.Equal(t, 0.0, a)
}

func TestClamp(t *testing.T) {
	v, changed := Clamp(5, 0, 10)
	assert.Equal(t, 5.0, v)
	assert.False(t, changed)

	v, changed = Clamp(-1, 0, 10)
	assert.Equal(t, 0.0, v)
	assert.True(t, changed)

	v, changed = Clamp(11, 0, 10)
	assert.Equal(t, 10.0, v)
	assert.True(t, changed)

	v, changed = Clamp(10, 0, 10)
	assert.Equal(t, 10.0, v)
	assert.False(t, changed)
}
