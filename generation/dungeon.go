package generation

import (
	"fmt"
	"math/rand"
	"time"
)

// DungeonGenerator handles procedural generation of dungeon layouts.
// A generator is single-threaded; each Generate call builds a fresh
// DungeonResult and shares no state with previous results.
type DungeonGenerator struct {
	rng *rand.Rand
}

// NewDungeonGenerator creates a new dungeon generator seeded from the clock.
func NewDungeonGenerator() *DungeonGenerator {
	return &DungeonGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible dungeons.
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate runs a complete generation pass and returns the finished dungeon.
// The same seed and configuration always reproduce the same result.
func (g *DungeonGenerator) Generate(cfg Config) (*DungeonResult, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		g.SetSeed(cfg.Seed)
	}

	grid := NewGrid(cfg.Width, cfg.Height)

	var rooms []*Room
	var corridors []*Corridor
	switch cfg.Generator {
	case GeneratorBSP:
		rooms, corridors = g.generateBSPRooms(grid, cfg)
	case GeneratorCellular:
		rooms = g.generateCaveRooms(grid, cfg)
	default:
		rooms = g.placeRandomRooms(grid, cfg)
	}
	if len(rooms) < 2 {
		return nil, fmt.Errorf("%w: placed %d", ErrTooFewRooms, len(rooms))
	}
	cfg.report("rooms", 25)

	// BSP wires its rooms implicitly during the bottom-up merge; the other
	// generators build an explicit graph over room centers.
	if cfg.Generator != GeneratorBSP && cfg.ConnectAllRooms {
		var edges []roomEdge
		if cfg.Graph == GraphNearest {
			edges = g.nearestNeighborGraph(rooms, 3)
		} else {
			edges = g.spanningTreeGraph(rooms)
		}
		for _, e := range edges {
			corridors = append(corridors, g.carveCorridor(grid, e.a.Center(), e.b.Center(), cfg.CorridorWidth))
		}
	}
	if cfg.AddLoops {
		for _, e := range g.loopEdges(rooms, cfg.LoopChance) {
			corridors = append(corridors, g.carveCorridor(grid, e.a.Center(), e.b.Center(), cfg.CorridorWidth))
		}
	}
	cfg.report("corridors", 60)

	// The entrance room anchors the reachability checks in post-processing
	// and keeps its tag during feature assignment.
	entrance := roomNearestTo(rooms, Point{X: cfg.Width / 2, Y: cfg.Height / 2})
	corridors = g.postProcess(grid, rooms, entrance, cfg, corridors)
	cfg.report("postprocess", 80)

	result := &DungeonResult{
		Grid:      grid,
		Rooms:     rooms,
		Corridors: corridors,
	}
	g.assignFeatures(grid, result, entrance, cfg)
	cfg.report("done", 100)

	return result, nil
}

// placeRandomRooms samples non-overlapping rooms by rejection, stamping each
// committed room into the grid. Placement stops once the target count is
// reached or the attempt budget runs out; a shortfall is not an error here.
func (g *DungeonGenerator) placeRandomRooms(grid *Grid, cfg Config) []*Room {
	var rooms []*Room
	for attempts := 0; attempts < cfg.MaxIterations && len(rooms) < cfg.RoomCount; attempts++ {
		w := cfg.MinRoomSize.W + g.rng.Intn(cfg.MaxRoomSize.W-cfg.MinRoomSize.W+1)
		h := cfg.MinRoomSize.H + g.rng.Intn(cfg.MaxRoomSize.H-cfg.MinRoomSize.H+1)
		if w+2 > grid.Width || h+2 > grid.Height {
			continue // sampled size cannot fit with a 1-tile border
		}
		x := 1 + g.rng.Intn(grid.Width-w-1)
		y := 1 + g.rng.Intn(grid.Height-h-1)

		room := &Room{ID: len(rooms), X: x, Y: y, Width: w, Height: h}
		overlaps := false
		for _, placed := range rooms {
			if room.Intersects(placed, cfg.RoomMargin) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		g.stampRoom(grid, room)
		rooms = append(rooms, room)
	}
	return rooms
}

// stampRoom writes the room footprint into the grid as floor tiles and
// records the member tile coordinates on the room.
func (g *DungeonGenerator) stampRoom(grid *Grid, room *Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			grid.SetTile(x, y, TileFloor)
			room.Tiles = append(room.Tiles, Point{X: x, Y: y})
		}
	}
}

// roomNearestTo returns the room whose center is closest to p.
func roomNearestTo(rooms []*Room, p Point) *Room {
	var nearest *Room
	best := 0.0
	for _, room := range rooms {
		d := room.Center().distanceTo(p)
		if nearest == nil || d < best {
			nearest = room
			best = d
		}
	}
	return nearest
}
