package parameter

// Terrain
const (
	// TerrainHeightScale maps normalised heightfield samples to world units
	TerrainHeightScale = 60.0

	// WaterLevel is the altitude of the water plane, which also collides
	WaterLevel = 25.0

	// TerrainCacheVersion is bumped whenever the cache layout changes
	TerrainCacheVersion = 1

	// TerrainCacheMagic prefixes every cache file
	TerrainCacheMagic = "FLKTERR"

	// GeneratedTerrainSize is the side of generated heightfields, 2^n+1 like a GeoMip source
	GeneratedTerrainSize = 1025
)

// Default asset paths
const (
	DefaultHeightfieldPath = "assets/1stmap_HF.png"
	DefaultColorMapPath    = "assets/1stmap_TM.png"
	DefaultTerrainCache    = "assets/1stmap.terrain"
)
