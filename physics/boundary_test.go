package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/flanker/core"
)

func TestClamp(t *testing.T) {
	b := Bounds{Size: 1024, MaxAltitude: 600}

	tests := []struct {
		name   string
		pos    mgl64.Vec3
		want   mgl64.Vec3
		status BoundaryStatus
	}{
		{"inside", mgl64.Vec3{10, 20, 30}, mgl64.Vec3{10, 20, 30}, BoundaryClear},
		{"west edge", mgl64.Vec3{-5, 20, 30}, mgl64.Vec3{0, 20, 30}, BoundaryAtEdge},
		{"north edge", mgl64.Vec3{10, 2000, 30}, mgl64.Vec3{10, 1024, 30}, BoundaryAtEdge},
		{"ceiling is silent", mgl64.Vec3{10, 20, 900}, mgl64.Vec3{10, 20, 600}, BoundaryClear},
		{"floor is silent", mgl64.Vec3{10, 20, -3}, mgl64.Vec3{10, 20, 0}, BoundaryClear},
		{"on the edge is clear", mgl64.Vec3{1024, 0, 0}, mgl64.Vec3{1024, 0, 0}, BoundaryClear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := Clamp(core.Pose{Pos: tt.pos, H: 12}, b)
			assert.Equal(t, tt.want, got.Pos)
			assert.Equal(t, 12.0, got.H)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestClampIdempotent(t *testing.T) {
	b := Bounds{Size: 1024, MaxAltitude: 600}
	for _, pos := range []mgl64.Vec3{{-100, 5000, 900}, {3, 4, 5}, {1500, -1, -1}} {
		once, _ := Clamp(core.Pose{Pos: pos}, b)
		twice, status := Clamp(once, b)
		assert.Equal(t, once, twice)
		assert.Equal(t, BoundaryClear, status)
	}
}

func TestBoundaryStatusString(t *testing.T) {
	assert.Equal(t, "clear", BoundaryClear.String())
	assert.Equal(t, "at_edge", BoundaryAtEdge.String())
}
