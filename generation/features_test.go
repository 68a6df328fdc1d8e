package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceDoorsAtCorridorJunctions(t *testing.T) {
	grid := NewGrid(15, 15)
	g := NewDungeonGenerator()

	room := &Room{ID: 0, X: 2, Y: 2, Width: 5, Height: 5}
	g.stampRoom(grid, room)
	grid.SetTile(7, 4, TileCorridor)

	g.placeDoors(grid, []*Room{room})

	assert.Equal(t, TileDoor, grid.Tile(6, 4))
	// Boundary tiles without an adjacent corridor stay floor.
	assert.Equal(t, TileFloor, grid.Tile(2, 2))
	assert.Equal(t, TileFloor, grid.Tile(6, 2))
	// Interior tiles are never converted.
	assert.Equal(t, TileFloor, grid.Tile(4, 4))
}

func TestAssignTreasureRoomsWithoutReplacement(t *testing.T) {
	g := NewDungeonGenerator()
	g.SetSeed(11)
	rooms := testRooms(5)

	g.assignTreasureRooms(rooms, 3)

	count := 0
	for _, room := range rooms {
		if room.Type == RoomTreasure {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestAssignTreasureRoomsCappedBySupply(t *testing.T) {
	g := NewDungeonGenerator()
	g.SetSeed(11)
	rooms := testRooms(2)

	g.assignTreasureRooms(rooms, 10)

	for _, room := range rooms {
		assert.Equal(t, RoomTreasure, room.Type)
	}
}

func TestGenerateEntranceIsNearestGridCenter(t *testing.T) {
	cfg := baseConfig()
	result, err := NewDungeonGenerator().Generate(cfg)
	require.NoError(t, err)

	entrance := result.RoomsOfType(RoomEntrance)[0]
	center := Point{X: cfg.Width / 2, Y: cfg.Height / 2}
	best := entrance.Center().distanceTo(center)
	for _, room := range result.Rooms {
		assert.GreaterOrEqual(t, room.Center().distanceTo(center), best,
			"room %d is closer to the grid center than the entrance", room.ID)
	}
	assert.Equal(t, TileEntrance, result.Grid.Tile(result.Entrance.X, result.Entrance.Y))
	assert.Equal(t, TileExit, result.Grid.Tile(result.Exit.X, result.Exit.Y))
}

func TestGenerateTreasureRoomCount(t *testing.T) {
	cfg := baseConfig()
	cfg.TreasureRooms = 2

	result, err := NewDungeonGenerator().Generate(cfg)
	require.NoError(t, err)

	assert.Len(t, result.RoomsOfType(RoomTreasure), 2)
	assert.Len(t, result.SpecialRooms[RoomTreasure], 2)

	// Treasure rooms carry at least one chest.
	for _, room := range result.RoomsOfType(RoomTreasure) {
		chests := 0
		for _, p := range room.Tiles {
			if result.Grid.Tile(p.X, p.Y) == TileChest {
				chests++
			}
		}
		assert.Greater(t, chests, 0, "treasure room %d has no chest", room.ID)
	}
}

func TestGenerateExitRoomHasBossArena(t *testing.T) {
	cfg := baseConfig()
	cfg.MinRoomSize = Size{W: 5, H: 5}

	result, err := NewDungeonGenerator().Generate(cfg)
	require.NoError(t, err)

	// The exit room doubles as the boss room: a decoration block rings the
	// center, with the exit tile in the middle.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			assert.Equal(t, TileDecoration,
				result.Grid.Tile(result.Exit.X+dx, result.Exit.Y+dy))
		}
	}
	assert.Equal(t, result.SpecialRooms[RoomExit], result.SpecialRooms[RoomBoss])
}
