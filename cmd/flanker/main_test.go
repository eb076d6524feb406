package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flanker/config"
)

func TestKeyTableAppliesBindings(t *testing.T) {
	cfg := config.Default().Input
	cfg.Bindings = map[string][]string{"fire": {"f"}}

	keys, err := keyTable(cfg)
	require.NoError(t, err)

	found := false
	for _, b := range keys.Bindings() {
		if b.Key.Rune == 'f' {
			found = true
			assert.Equal(t, "fire", b.Action.String())
		}
	}
	assert.True(t, found)

	cfg.Bindings = map[string][]string{"barrel_roll": {"b"}}
	_, err = keyTable(cfg)
	assert.Error(t, err)
}

func TestGenerateTerrainCommand(t *testing.T) {
	restoreLogging(t)
	zerolog.SetGlobalLevel(zerolog.Disabled)

	dir := t.TempDir()
	require.NoError(t, generateTerrainCommand(dir, 7, 33))

	for _, name := range []string{"1stmap_HF.png", "1stmap_TM.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	assert.Error(t, generateTerrainCommand(dir, 7, 1))
}

func TestLoadTerrainLogsColdBuild(t *testing.T) {
	restoreLogging(t)

	dir := t.TempDir()
	setupConsoleLogging(&bytes.Buffer{}, false)
	require.NoError(t, generateTerrainCommand(dir, 3, 17))

	cfg := config.Default()
	cfg.Terrain.Heightfield = filepath.Join(dir, "1stmap_HF.png")
	cfg.Terrain.ColorMap = filepath.Join(dir, "1stmap_TM.png")
	cfg.Terrain.Cache = filepath.Join(dir, "terrain.cache")

	var out bytes.Buffer
	setupConsoleLogging(&out, false)
	tr, err := loadTerrain(cfg)
	require.NoError(t, err)
	assert.Equal(t, 17, tr.Width)
	assert.Contains(t, out.String(), "generating terrain")
	assert.Contains(t, out.String(), "terrain ready")

	out.Reset()
	_, err = loadTerrain(cfg)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "generating terrain", "warm start reads the cache")
}
