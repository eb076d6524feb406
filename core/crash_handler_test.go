package core

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCrashReporterRestoresFirst(t *testing.T) {
	var out bytes.Buffer
	restored := false
	c := CrashReporter{
		Restore: func() {
			restored = true
			assert.Zero(t, out.Len(), "terminal restored before printing")
		},
		Out: &out,
	}

	c.Report("boom")
	assert.True(t, restored)
	assert.Contains(t, out.String(), "FLANKER CRASHED: boom")
	assert.Contains(t, out.String(), "Stack Trace:\r\n")
}

func TestCrashReporterWithoutRestore(t *testing.T) {
	var out bytes.Buffer
	assert.NotPanics(t, func() { CrashReporter{Out: &out}.Report(42) })
	assert.Contains(t, out.String(), "42")
}

func TestPoseAccessors(t *testing.T) {
	p := NewPose(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6})
	assert.Equal(t, 1.0, p.X())
	assert.Equal(t, 2.0, p.Y())
	assert.Equal(t, 3.0, p.Z())
	assert.Equal(t, mgl64.Vec3{4, 5, 6}, p.HPR())
}
