package generation

// generateCaveRooms creates organic cave layouts using cellular automata and
// reports every significant open area as a room. The caves feed the same
// graph, corridor and post-processing pipeline as the rectangular generators.
func (g *DungeonGenerator) generateCaveRooms(grid *Grid, cfg Config) []*Room {
	// Seed the automata with random open space (55% open).
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			if g.rng.Float64() >= 0.45 {
				grid.Tiles[y][x] = TileFloor
			}
		}
	}

	// A cell with more than 4 solid neighbors solidifies, with fewer than 4
	// it opens up. Grid edges count as solid.
	for i := 0; i < 4; i++ {
		snapshot := grid.Clone()
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				solid := snapshot.countNeighbors(x, y, func(t Tile) bool { return t == TileEmpty })
				if solid > 4 {
					grid.Tiles[y][x] = TileEmpty
				} else if solid < 4 {
					grid.Tiles[y][x] = TileFloor
				}
			}
		}
	}

	g.cleanupIsolatedCells(grid)

	return findOpenAreas(grid, 16)
}

// cleanupIsolatedCells removes single stray solid cells and fills pinched-off
// open cells left behind by the automata.
func (g *DungeonGenerator) cleanupIsolatedCells(grid *Grid) {
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			solid := grid.countNeighbors(x, y, func(t Tile) bool { return t == TileEmpty })
			if grid.Tiles[y][x] == TileEmpty && solid <= 2 {
				grid.Tiles[y][x] = TileFloor
			} else if grid.Tiles[y][x] == TileFloor && solid >= 7 {
				grid.Tiles[y][x] = TileEmpty
			}
		}
	}
}

// findOpenAreas flood-fills the grid and returns every contiguous floor area
// of at least minArea tiles as a room. The room rectangle is the area's
// bounding box; the member tiles are the actual flooded tiles.
func findOpenAreas(grid *Grid, minArea int) []*Room {
	visited := make([][]bool, grid.Height)
	for i := range visited {
		visited[i] = make([]bool, grid.Width)
	}

	var rooms []*Room
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if visited[y][x] || grid.Tiles[y][x] != TileFloor {
				continue
			}

			var tiles []Point
			minX, maxX, minY, maxY := x, x, y, y
			queue := []Point{{X: x, Y: y}}
			visited[y][x] = true
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				tiles = append(tiles, p)
				minX, maxX = min(minX, p.X), max(maxX, p.X)
				minY, maxY = min(minY, p.Y), max(maxY, p.Y)
				for _, d := range []Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}} {
					nx, ny := p.X+d.X, p.Y+d.Y
					if grid.InBounds(nx, ny) && !visited[ny][nx] && grid.Tiles[ny][nx] == TileFloor {
						visited[ny][nx] = true
						queue = append(queue, Point{X: nx, Y: ny})
					}
				}
			}

			if len(tiles) < minArea {
				continue
			}
			rooms = append(rooms, &Room{
				ID:     len(rooms),
				X:      minX,
				Y:      minY,
				Width:  maxX - minX + 1,
				Height: maxY - minY + 1,
				Tiles:  tiles,
			})
		}
	}
	return rooms
}
