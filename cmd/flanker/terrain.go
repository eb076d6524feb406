package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/terrain"
)

// buildTerrainCommand rebuilds the cache even when one exists
func buildTerrainCommand(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	t, err := terrain.Build(cfg.Terrain.Heightfield, cfg.Terrain.ColorMap, cfg.Terrain.HeightScale)
	if err != nil {
		return err
	}
	if err := terrain.WriteCache(cfg.Terrain.Cache, t); err != nil {
		return err
	}

	log.Info().
		Str("cache", cfg.Terrain.Cache).
		Int("width", t.Width).
		Int("height", t.Height).
		Msg("terrain cache written")
	return nil
}

// generateTerrainCommand writes PNGs under the file names the default config expects
func generateTerrainCommand(out string, seed uint32, size int) error {
	if size < 2 {
		return fmt.Errorf("terrain size must be at least 2, got %d", size)
	}

	hfPath := filepath.Join(out, filepath.Base(parameter.DefaultHeightfieldPath))
	cmPath := filepath.Join(out, filepath.Base(parameter.DefaultColorMapPath))
	if err := terrain.WritePNGs(terrain.DefaultGenerateOptions(size, seed), hfPath, cmPath); err != nil {
		return err
	}

	log.Info().
		Str("heightfield", hfPath).
		Str("color_map", cmPath).
		Uint32("seed", seed).
		Int("size", size).
		Msg("terrain images generated")
	return nil
}
