package generation

// carveCorridor digs an L-shaped corridor of the given width between two
// points, coin-flipping whether the horizontal or the vertical leg comes
// first. Only empty tiles are carved so room interiors stay untouched.
func (g *DungeonGenerator) carveCorridor(grid *Grid, from, to Point, width int) *Corridor {
	c := &Corridor{Start: from, End: to, Width: width}
	if g.rng.Intn(2) == 0 {
		// Horizontal then vertical
		g.carveHorizontalRun(grid, c, from.X, to.X, from.Y)
		g.carveVerticalRun(grid, c, from.Y, to.Y, to.X)
	} else {
		// Vertical then horizontal
		g.carveVerticalRun(grid, c, from.Y, to.Y, from.X)
		g.carveHorizontalRun(grid, c, from.X, to.X, to.Y)
	}
	return c
}

// carveHorizontalRun carves a horizontal run from x1 to x2 at y, widened
// perpendicular to the direction of travel.
func (g *DungeonGenerator) carveHorizontalRun(grid *Grid, c *Corridor, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	half := c.Width / 2
	for x := x1; x <= x2; x++ {
		for off := -half; off < c.Width-half; off++ {
			g.carveTile(grid, c, x, y+off)
		}
	}
}

// carveVerticalRun carves a vertical run from y1 to y2 at x, widened
// perpendicular to the direction of travel.
func (g *DungeonGenerator) carveVerticalRun(grid *Grid, c *Corridor, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	half := c.Width / 2
	for y := y1; y <= y2; y++ {
		for off := -half; off < c.Width-half; off++ {
			g.carveTile(grid, c, x+off, y)
		}
	}
}

// carveTile converts a single empty tile to corridor and records it on the
// corridor's path.
func (g *DungeonGenerator) carveTile(grid *Grid, c *Corridor, x, y int) {
	if !grid.InBounds(x, y) || grid.Tiles[y][x] != TileEmpty {
		return
	}
	grid.Tiles[y][x] = TileCorridor
	c.Path = append(c.Path, Point{X: x, Y: y})
}
