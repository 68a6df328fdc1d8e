package generation

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Biome identifies the terrain kind of a world map cell.
type Biome int

const (
	BiomeWater Biome = iota
	BiomeWasteland
	BiomeDesert
	BiomeDarkForest
	BiomeMountains
)

// String returns a short name for the biome.
func (b Biome) String() string {
	switch b {
	case BiomeWater:
		return "water"
	case BiomeWasteland:
		return "wasteland"
	case BiomeDesert:
		return "desert"
	case BiomeDarkForest:
		return "dark forest"
	case BiomeMountains:
		return "mountains"
	}
	return "unknown"
}

// WorldMap is the generated overworld terrain. Pure data, like DungeonResult.
type WorldMap struct {
	Width  int
	Height int
	Biomes [][]Biome
}

// WorldMapGenerator handles procedural generation of the world map using
// fractal simplex noise for biome distribution.
type WorldMapGenerator struct {
	rng   *rand.Rand
	noise opensimplex.Noise
}

// NewWorldMapGenerator creates a new world map generator.
func NewWorldMapGenerator(seed int64) *WorldMapGenerator {
	return &WorldMapGenerator{
		rng:   rand.New(rand.NewSource(seed)),
		noise: opensimplex.New(seed),
	}
}

// SetSeed allows setting a specific seed for reproducible world generation.
func (g *WorldMapGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.noise = opensimplex.New(seed)
}

// Generate creates a world map with biomes derived from elevation and
// moisture noise channels.
func (g *WorldMapGenerator) Generate(width, height int) *WorldMap {
	m := &WorldMap{
		Width:  width,
		Height: height,
		Biomes: make([][]Biome, height),
	}
	for y := 0; y < height; y++ {
		m.Biomes[y] = make([]Biome, width)
		for x := 0; x < width; x++ {
			elevation := g.fractal2D(float64(x), float64(y))
			// Offset sampling gives the moisture channel an independent pattern.
			moisture := g.fractal2D(float64(x)+500, float64(y)+500)
			m.Biomes[y][x] = determineBiome(elevation, moisture)
		}
	}
	return m
}

// fractal2D sums six octaves of simplex noise, normalized to roughly [-1, 1].
func (g *WorldMapGenerator) fractal2D(x, y float64) float64 {
	const (
		octaves = 6
		scale   = 20.0
	)
	x /= scale
	y /= scale

	var total, maxValue float64
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < octaves; i++ {
		total += g.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	return total / maxValue
}

// determineBiome returns the appropriate biome for an elevation/moisture pair.
func determineBiome(elevation, moisture float64) Biome {
	switch {
	case elevation < -0.3:
		return BiomeWater
	case elevation > 0.15:
		return BiomeMountains
	case elevation > 0.0 && moisture < 0.0:
		return BiomeDesert
	case moisture > 0.1:
		return BiomeDarkForest
	default:
		return BiomeWasteland
	}
}
