package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caveConfig(seed int64) Config {
	return Config{
		Width:           64,
		Height:          64,
		MinRoomSize:     Size{W: 4, H: 4},
		MaxRoomSize:     Size{W: 10, H: 10},
		CorridorWidth:   2,
		Seed:            seed,
		Generator:       GeneratorCellular,
		ConnectAllRooms: true,
	}
}

func TestGenerateCellularCaves(t *testing.T) {
	// The automata occasionally collapse to a single cave, which is a valid
	// ErrTooFewRooms outcome; at least one seed in the range must produce a
	// multi-cave dungeon.
	succeeded := false
	for seed := int64(1); seed <= 5; seed++ {
		result, err := NewDungeonGenerator().Generate(caveConfig(seed))
		if err != nil {
			require.ErrorIs(t, err, ErrTooFewRooms, "seed %d", seed)
			continue
		}
		succeeded = true

		require.GreaterOrEqual(t, len(result.Rooms), 2)
		for _, room := range result.Rooms {
			assert.GreaterOrEqual(t, len(room.Tiles), 16, "cave %d below minimum area", room.ID)
		}
		assertAllRoomTilesReachable(t, result)
	}
	require.True(t, succeeded, "no seed in 1..5 produced a multi-cave dungeon")
}

func TestGenerateCellularSameSeedIsIdentical(t *testing.T) {
	cfg := caveConfig(2)
	first, errFirst := NewDungeonGenerator().Generate(cfg)
	second, errSecond := NewDungeonGenerator().Generate(cfg)

	if errFirst != nil {
		require.True(t, errors.Is(errSecond, ErrTooFewRooms))
		return
	}
	require.NoError(t, errSecond)
	assert.Equal(t, first.Grid.Tiles, second.Grid.Tiles)
	assert.Equal(t, first.Entrance, second.Entrance)
	assert.Equal(t, first.Exit, second.Exit)
}

func TestFindOpenAreasIgnoresSmallPockets(t *testing.T) {
	grid := NewGrid(20, 20)
	// One 5x5 area (25 tiles) and one 3x3 pocket (9 tiles, below minimum).
	for y := 2; y < 7; y++ {
		for x := 2; x < 7; x++ {
			grid.SetTile(x, y, TileFloor)
		}
	}
	for y := 12; y < 15; y++ {
		for x := 12; x < 15; x++ {
			grid.SetTile(x, y, TileFloor)
		}
	}

	rooms := findOpenAreas(grid, 16)

	require.Len(t, rooms, 1)
	assert.Equal(t, 2, rooms[0].X)
	assert.Equal(t, 2, rooms[0].Y)
	assert.Equal(t, 5, rooms[0].Width)
	assert.Equal(t, 5, rooms[0].Height)
	assert.Len(t, rooms[0].Tiles, 25)
}

func TestFindOpenAreasBoundingBoxOfIrregularShape(t *testing.T) {
	grid := NewGrid(20, 20)
	// An L-shaped area: the bounding box spans the full extent while the
	// member tiles cover only the carved cells.
	for x := 2; x < 10; x++ {
		grid.SetTile(x, 2, TileFloor)
		grid.SetTile(x, 3, TileFloor)
	}
	for y := 2; y < 10; y++ {
		grid.SetTile(2, y, TileFloor)
		grid.SetTile(3, y, TileFloor)
	}

	rooms := findOpenAreas(grid, 16)

	require.Len(t, rooms, 1)
	assert.Equal(t, 8, rooms[0].Width)
	assert.Equal(t, 8, rooms[0].Height)
	assert.Len(t, rooms[0].Tiles, 28)
}

func TestCleanupIsolatedCells(t *testing.T) {
	grid := NewGrid(12, 12)
	for y := 1; y < 11; y++ {
		for x := 1; x < 11; x++ {
			grid.SetTile(x, y, TileFloor)
		}
	}
	// A solid cell alone in open space gets removed.
	grid.SetTile(5, 5, TileEmpty)

	g := NewDungeonGenerator()
	g.cleanupIsolatedCells(grid)

	assert.Equal(t, TileFloor, grid.Tile(5, 5))
}
