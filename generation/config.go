package generation

import (
	"errors"
	"fmt"
)

// GeneratorType selects the room-layout algorithm.
type GeneratorType int

const (
	GeneratorRandom   GeneratorType = iota // rejection-sampled random rooms
	GeneratorBSP                           // binary space partitioning
	GeneratorCellular                      // cellular automata caves
)

// GraphMode selects how rooms are wired together.
type GraphMode int

const (
	GraphMST     GraphMode = iota // Prim-style minimum spanning tree
	GraphNearest                  // K nearest neighbors per room, may leave components disjoint
)

// ProgressFunc receives coarse generation progress for external UI feedback.
// It has no effect on the generated dungeon.
type ProgressFunc func(stage string, percent int)

// Config defines a complete configuration for a dungeon generation pass.
type Config struct {
	Width  int // grid width in tiles
	Height int // grid height in tiles

	RoomCount     int   // target number of rooms
	MinRoomSize   Size  // smallest allowed room
	MaxRoomSize   Size  // largest allowed room
	RoomMargin    int   // minimum empty tiles kept between room rectangles
	CorridorWidth int   // carved corridor width, odd values center on the path line
	TreasureRooms int   // rooms tagged as treasure rooms (excluding entrance/exit)
	MaxIterations int   // placement attempt cap for GeneratorRandom
	BSPDepth      int   // partition depth for GeneratorBSP
	Seed          int64 // 0 keeps the generator's current stream

	Generator       GeneratorType
	Graph           GraphMode
	ConnectAllRooms bool
	AddLoops        bool
	LoopChance      float64 // 0-1, per-room chance of one extra loop edge

	Progress ProgressFunc
}

// Size is a width/height pair in tiles.
type Size struct {
	W, H int
}

// Generation errors reported to the caller.
var (
	ErrInvalidConfig = errors.New("invalid dungeon configuration")
	ErrTooFewRooms   = errors.New("fewer than 2 rooms could be placed")
)

// withDefaults fills zero-valued fields with sensible defaults.
func (c Config) withDefaults() Config {
	if c.RoomCount == 0 {
		c.RoomCount = 8
	}
	if c.MinRoomSize == (Size{}) {
		c.MinRoomSize = Size{W: 4, H: 4}
	}
	if c.MaxRoomSize == (Size{}) {
		c.MaxRoomSize = Size{W: 10, H: 10}
	}
	if c.CorridorWidth == 0 {
		c.CorridorWidth = 1
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 1000
	}
	if c.BSPDepth == 0 {
		c.BSPDepth = 4
	}
	return c
}

// validate checks that the configuration can produce a dungeon at all.
// Impossible fits are caught here so the algorithm itself never faults.
func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.RoomCount < 2 {
		return fmt.Errorf("%w: room count %d must be at least 2", ErrInvalidConfig, c.RoomCount)
	}
	if c.MinRoomSize.W < 1 || c.MinRoomSize.H < 1 {
		return fmt.Errorf("%w: minimum room size %dx%d must be positive", ErrInvalidConfig, c.MinRoomSize.W, c.MinRoomSize.H)
	}
	if c.MinRoomSize.W > c.MaxRoomSize.W || c.MinRoomSize.H > c.MaxRoomSize.H {
		return fmt.Errorf("%w: minimum room size %dx%d exceeds maximum %dx%d",
			ErrInvalidConfig, c.MinRoomSize.W, c.MinRoomSize.H, c.MaxRoomSize.W, c.MaxRoomSize.H)
	}
	// Rooms need a 1-tile border inside the grid.
	if c.MinRoomSize.W+2 > c.Width || c.MinRoomSize.H+2 > c.Height {
		return fmt.Errorf("%w: minimum room size %dx%d cannot fit a %dx%d grid with a 1-tile border",
			ErrInvalidConfig, c.MinRoomSize.W, c.MinRoomSize.H, c.Width, c.Height)
	}
	if c.CorridorWidth < 1 {
		return fmt.Errorf("%w: corridor width %d must be positive", ErrInvalidConfig, c.CorridorWidth)
	}
	if c.CorridorWidth >= c.Width || c.CorridorWidth >= c.Height {
		return fmt.Errorf("%w: corridor width %d exceeds grid bounds", ErrInvalidConfig, c.CorridorWidth)
	}
	if c.RoomMargin < 0 {
		return fmt.Errorf("%w: room margin %d must not be negative", ErrInvalidConfig, c.RoomMargin)
	}
	if c.LoopChance < 0 || c.LoopChance > 1 {
		return fmt.Errorf("%w: loop chance %.2f must be within [0, 1]", ErrInvalidConfig, c.LoopChance)
	}
	if c.TreasureRooms < 0 {
		return fmt.Errorf("%w: treasure room count %d must not be negative", ErrInvalidConfig, c.TreasureRooms)
	}
	return nil
}

// report fires the progress callback if one was supplied.
func (c Config) report(stage string, percent int) {
	if c.Progress != nil {
		c.Progress(stage, percent)
	}
}
