package generation

// Tile identifies the kind of a single dungeon cell.
type Tile int

// Tile kinds
const (
	TileEmpty Tile = iota // outside the playable area
	TileFloor
	TileWall
	TileDoor
	TileCorridor
	TileEntrance
	TileExit
	TileChest
	TileTrap
	TileDecoration
)

// String returns a short name for the tile kind.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileCorridor:
		return "corridor"
	case TileEntrance:
		return "entrance"
	case TileExit:
		return "exit"
	case TileChest:
		return "chest"
	case TileTrap:
		return "trap"
	case TileDecoration:
		return "decoration"
	}
	return "unknown"
}

// Walkable reports whether the tile can be walked on.
func (t Tile) Walkable() bool {
	return t != TileEmpty && t != TileWall
}

// Grid stores the dungeon map data as a dense 2D tile array.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid creates a new grid of the given dimensions, filled with TileEmpty.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([][]Tile, height),
	}
	for y := 0; y < height; y++ {
		g.Tiles[y] = make([]Tile, width)
	}
	return g
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Tile returns the tile at (x, y). Out-of-bounds positions read as TileEmpty.
func (g *Grid) Tile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileEmpty
	}
	return g.Tiles[y][x]
}

// SetTile sets the tile at (x, y), ignoring out-of-bounds writes.
func (g *Grid) SetTile(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.Tiles[y][x] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		copy(c.Tiles[y], g.Tiles[y])
	}
	return c
}

// countNeighbors counts 8-neighborhood tiles around (x, y) matching the predicate.
// Out-of-bounds neighbors are passed to the predicate as TileEmpty.
func (g *Grid) countNeighbors(x, y int, match func(Tile) bool) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if match(g.Tile(x+dx, y+dy)) {
				count++
			}
		}
	}
	return count
}
