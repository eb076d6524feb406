package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultGenerateOptions(33, 3)
	hf1, cm1 := Generate(opts)
	hf2, cm2 := Generate(opts)
	assert.Equal(t, hf1.Pix, hf2.Pix)
	assert.Equal(t, cm1.Pix, cm2.Pix)

	other, _ := Generate(DefaultGenerateOptions(33, 4))
	assert.NotEqual(t, hf1.Pix, other.Pix)
}

func TestGenerateBuildsUsableTerrain(t *testing.T) {
	hf, cm := Generate(DefaultGenerateOptions(33, 9))
	tr, err := FromImages(hf, cm, 60)
	assert.NoError(t, err)

	assert.Equal(t, 33, tr.Width)
	for _, h := range tr.Heights {
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(60))
	}
}
