package terrain

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// Sources names the terrain inputs and the cache location
type Sources struct {
	Heightfield string
	ColorMap    string
	Cache       string
	Scale       float64
}

// LoadOrBuild returns the cached terrain, building and caching it from the images when no cache exists
// The build runs at most once per missing cache; a failed write is returned, not retried
func LoadOrBuild(src Sources) (t *Terrain, built bool, err error) {
	if _, err := os.Stat(src.Cache); err == nil {
		t, err := ReadCache(src.Cache)
		if err != nil {
			return nil, false, err
		}
		log.Debug().Str("path", src.Cache).Int("width", t.Width).Int("height", t.Height).Msg("terrain cache loaded")
		return t, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, assetErr("read", src.Cache, err)
	}

	log.Info().Str("heightfield", src.Heightfield).Str("color_map", src.ColorMap).Msg("generating terrain and saving cache for future use")
	t, err = Build(src.Heightfield, src.ColorMap, src.Scale)
	if err != nil {
		return nil, false, err
	}
	if err := WriteCache(src.Cache, t); err != nil {
		return nil, false, err
	}
	return t, true, nil
}
