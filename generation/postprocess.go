package generation

// postProcess converts the raw floor/corridor tile set into a fully walled,
// structurally sound dungeon and guarantees every room is reachable from the
// entrance room. Returns the corridor list extended with any repair corridors.
func (g *DungeonGenerator) postProcess(grid *Grid, rooms []*Room, entrance *Room, cfg Config, corridors []*Corridor) []*Corridor {
	g.fillWalls(grid)
	g.removeIsolatedWalls(grid)
	g.smoothWalls(grid)
	// Removal and smoothing can expose walkable tiles to the void again;
	// a second fill restores the wall closure invariant.
	g.fillWalls(grid)

	return g.repairConnectivity(grid, rooms, entrance, cfg, corridors)
}

// fillWalls converts every empty tile that touches a walkable tile
// (8-neighborhood) into a wall. Empty tiles away from the playable area
// stay empty.
func (g *DungeonGenerator) fillWalls(grid *Grid) {
	snapshot := grid.Clone()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if snapshot.Tiles[y][x] != TileEmpty {
				continue
			}
			if snapshot.countNeighbors(x, y, Tile.Walkable) > 0 {
				grid.Tiles[y][x] = TileWall
			}
		}
	}
}

// removeIsolatedWalls reverts stray walls (two or fewer wall neighbors in the
// 8-neighborhood) back to empty.
func (g *DungeonGenerator) removeIsolatedWalls(grid *Grid) {
	snapshot := grid.Clone()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if snapshot.Tiles[y][x] != TileWall {
				continue
			}
			walls := snapshot.countNeighbors(x, y, func(t Tile) bool { return t == TileWall })
			if walls <= 2 {
				grid.Tiles[y][x] = TileEmpty
			}
		}
	}
}

// smoothWalls converts wall pockets (five or more floor/corridor neighbors)
// into floor. Computed on a snapshot so changes cannot cascade within a pass.
func (g *DungeonGenerator) smoothWalls(grid *Grid) {
	snapshot := grid.Clone()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if snapshot.Tiles[y][x] != TileWall {
				continue
			}
			open := snapshot.countNeighbors(x, y, func(t Tile) bool {
				return t == TileFloor || t == TileCorridor
			})
			if open >= 5 {
				grid.Tiles[y][x] = TileFloor
			}
		}
	}
}

// repairConnectivity flood-fills from the entrance room's center and carves a
// corridor from every unreached room to the nearest visited tile until all
// rooms are reachable.
func (g *DungeonGenerator) repairConnectivity(grid *Grid, rooms []*Room, entrance *Room, cfg Config, corridors []*Corridor) []*Corridor {
	// Cave rooms can have a solid bounding-box center; the anchor falls back
	// to a walkable member tile so the flood and the carve start on the
	// room's actual area.
	seed := roomAnchor(grid, entrance)
	for i := 0; i <= len(rooms); i++ {
		visited := floodFrom(grid, seed)
		room := firstUnreachedRoom(rooms, visited)
		if room == nil {
			return corridors
		}

		anchor := roomAnchor(grid, room)
		target, ok := nearestVisitedTile(grid, visited, anchor)
		if !ok {
			return corridors
		}
		corridors = append(corridors, g.carveRepairCorridor(grid, anchor, target, cfg.CorridorWidth))
		if owner := roomAt(rooms, target); owner != nil && owner != room && !room.ConnectedTo(owner) {
			connect(room, owner)
		}
		// New corridor tiles need walls of their own.
		g.fillWalls(grid)
	}
	return corridors
}

// floodFrom marks all walkable tiles reachable from start through cardinal
// moves.
func floodFrom(grid *Grid, start Point) [][]bool {
	visited := make([][]bool, grid.Height)
	for i := range visited {
		visited[i] = make([]bool, grid.Width)
	}
	if !grid.InBounds(start.X, start.Y) || !grid.Tile(start.X, start.Y).Walkable() {
		return visited
	}

	queue := []Point{start}
	visited[start.Y][start.X] = true
	dirs := []Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if !grid.InBounds(nx, ny) || visited[ny][nx] {
				continue
			}
			if grid.Tiles[ny][nx].Walkable() {
				visited[ny][nx] = true
				queue = append(queue, Point{X: nx, Y: ny})
			}
		}
	}
	return visited
}

// firstUnreachedRoom returns the first room with no tile in the visited set.
func firstUnreachedRoom(rooms []*Room, visited [][]bool) *Room {
	for _, room := range rooms {
		reached := false
		for _, p := range room.Tiles {
			if visited[p.Y][p.X] {
				reached = true
				break
			}
		}
		if !reached {
			return room
		}
	}
	return nil
}

// nearestVisitedTile returns the visited tile closest (Euclidean) to p.
func nearestVisitedTile(grid *Grid, visited [][]bool, p Point) (Point, bool) {
	var nearest Point
	found := false
	bestDist := 0.0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if !visited[y][x] {
				continue
			}
			d := p.distanceTo(Point{X: x, Y: y})
			if !found || d < bestDist {
				nearest = Point{X: x, Y: y}
				bestDist = d
				found = true
			}
		}
	}
	return nearest, found
}

// roomAt returns the room whose rectangle contains p, if any.
func roomAt(rooms []*Room, p Point) *Room {
	for _, room := range rooms {
		if p.X >= room.X && p.X < room.X+room.Width && p.Y >= room.Y && p.Y < room.Y+room.Height {
			return room
		}
	}
	return nil
}

// carveRepairCorridor carves an L-shaped corridor like carveCorridor but is
// allowed to punch through walls, since repair runs after wall fill.
func (g *DungeonGenerator) carveRepairCorridor(grid *Grid, from, to Point, width int) *Corridor {
	c := &Corridor{Start: from, End: to, Width: width}
	carve := func(x, y int) {
		if !grid.InBounds(x, y) {
			return
		}
		if t := grid.Tiles[y][x]; t == TileEmpty || t == TileWall {
			grid.Tiles[y][x] = TileCorridor
			c.Path = append(c.Path, Point{X: x, Y: y})
		}
	}
	half := width / 2
	carveH := func(x1, x2, y int) {
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			for off := -half; off < width-half; off++ {
				carve(x, y+off)
			}
		}
	}
	carveV := func(y1, y2, x int) {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			for off := -half; off < width-half; off++ {
				carve(x+off, y)
			}
		}
	}
	if g.rng.Intn(2) == 0 {
		carveH(from.X, to.X, from.Y)
		carveV(from.Y, to.Y, to.X)
	} else {
		carveV(from.Y, to.Y, from.X)
		carveH(from.X, to.X, to.Y)
	}
	return c
}
