package generation

// assignFeatures labels special rooms and scatters decorative and functional
// tiles. The entrance room was already chosen (nearest the dungeon center);
// the exit room is the one farthest from rooms[0]. The two orderings are
// intentionally distinct and kept as-is.
func (g *DungeonGenerator) assignFeatures(grid *Grid, result *DungeonResult, entrance *Room, cfg Config) {
	rooms := result.Rooms
	entrance.Type = RoomEntrance

	exit := farthestRoomFrom(rooms, rooms[0], entrance)
	exit.Type = RoomExit

	g.assignTreasureRooms(rooms, cfg.TreasureRooms)

	for _, room := range rooms {
		switch room.Type {
		case RoomNormal:
			if g.rng.Intn(100) < 30 {
				g.scatterInRoom(grid, room, TileTrap, 1+g.rng.Intn(4))
			}
			if g.rng.Intn(100) < 50 {
				g.scatterInRoom(grid, room, TileDecoration, 2+g.rng.Intn(6))
			}
		case RoomTreasure:
			g.scatterInRoom(grid, room, TileChest, 1+g.rng.Intn(3))
		case RoomExit:
			// The exit room doubles as the boss room and gets a fixed
			// decoration block around its center.
			c := room.Center()
			for y := c.Y - 1; y <= c.Y+1; y++ {
				for x := c.X - 1; x <= c.X+1; x++ {
					if grid.Tile(x, y) == TileFloor {
						grid.SetTile(x, y, TileDecoration)
					}
				}
			}
		}
	}

	g.placeDoors(grid, rooms)

	result.Entrance = roomAnchor(grid, entrance)
	result.Exit = roomAnchor(grid, exit)
	grid.SetTile(result.Entrance.X, result.Entrance.Y, TileEntrance)
	grid.SetTile(result.Exit.X, result.Exit.Y, TileExit)

	result.SpecialRooms = map[RoomType][]Point{
		RoomEntrance: {result.Entrance},
		RoomExit:     {result.Exit},
		RoomBoss:     {result.Exit},
	}
	for _, room := range rooms {
		if room.Type == RoomTreasure {
			result.SpecialRooms[RoomTreasure] = append(result.SpecialRooms[RoomTreasure], room.Center())
		}
	}
}

// assignTreasureRooms tags up to count normal rooms as treasure rooms, chosen
// at random without replacement.
func (g *DungeonGenerator) assignTreasureRooms(rooms []*Room, count int) {
	var normal []*Room
	for _, room := range rooms {
		if room.Type == RoomNormal {
			normal = append(normal, room)
		}
	}
	for i := 0; i < count && len(normal) > 0; i++ {
		idx := g.rng.Intn(len(normal))
		normal[idx].Type = RoomTreasure
		normal = append(normal[:idx], normal[idx+1:]...)
	}
}

// scatterInRoom places up to count tiles of the given kind on random floor
// tiles inside the room.
func (g *DungeonGenerator) scatterInRoom(grid *Grid, room *Room, t Tile, count int) {
	for i := 0; i < count; i++ {
		for attempts := 0; attempts < 50; attempts++ {
			x := room.X + g.rng.Intn(room.Width)
			y := room.Y + g.rng.Intn(room.Height)
			if grid.Tile(x, y) == TileFloor {
				grid.SetTile(x, y, t)
				break
			}
		}
	}
}

// placeDoors converts room-boundary floor tiles that touch a corridor tile
// (cardinal directions) into doors, marking room entrances distinctly from
// plain walls.
func (g *DungeonGenerator) placeDoors(grid *Grid, rooms []*Room) {
	dirs := []Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for _, room := range rooms {
		for _, p := range room.Tiles {
			onBoundary := p.X == room.X || p.X == room.X+room.Width-1 ||
				p.Y == room.Y || p.Y == room.Y+room.Height-1
			if !onBoundary || grid.Tile(p.X, p.Y) != TileFloor {
				continue
			}
			for _, d := range dirs {
				if grid.Tile(p.X+d.X, p.Y+d.Y) == TileCorridor {
					grid.SetTile(p.X, p.Y, TileDoor)
					break
				}
			}
		}
	}
}

// roomAnchor returns the room center, or the walkable member tile nearest to
// it when the center itself is solid (cave rooms have irregular shapes).
func roomAnchor(grid *Grid, room *Room) Point {
	c := room.Center()
	if grid.Tile(c.X, c.Y).Walkable() {
		return c
	}
	anchor := c
	best := -1.0
	for _, p := range room.Tiles {
		if !grid.Tile(p.X, p.Y).Walkable() {
			continue
		}
		d := c.distanceTo(p)
		if best < 0 || d < best {
			anchor = p
			best = d
		}
	}
	return anchor
}

// farthestRoomFrom returns the room whose center is farthest from the
// reference room, never returning the excluded room.
func farthestRoomFrom(rooms []*Room, from, exclude *Room) *Room {
	var farthest *Room
	best := -1.0
	for _, room := range rooms {
		if room == exclude {
			continue
		}
		d := from.Center().distanceTo(room.Center())
		if d > best {
			farthest = room
			best = d
		}
	}
	return farthest
}
