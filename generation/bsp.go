package generation

// bspNode represents a node in the binary space partitioning tree.
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Room
}

// generateBSPRooms creates rooms using binary space partitioning and wires
// their connectivity implicitly: every internal node connects one
// representative room from its left subtree to one from its right subtree
// during the bottom-up merge.
func (g *DungeonGenerator) generateBSPRooms(grid *Grid, cfg Config) ([]*Room, []*Corridor) {
	// The root is inset by one tile so no room can touch the grid edge.
	root := &bspNode{x: 1, y: 1, width: grid.Width - 2, height: grid.Height - 2}
	g.splitNode(root, 0, cfg)

	var rooms []*Room
	g.createRoomsInLeaves(root, grid, cfg, &rooms)

	var corridors []*Corridor
	g.connectSubtrees(root, grid, cfg, &corridors)

	return rooms, corridors
}

// splitNode recursively splits a BSP node into two child nodes. Splitting
// stops at the configured depth or when the node can no longer fit two
// minimum-size children along either axis.
func (g *DungeonGenerator) splitNode(node *bspNode, depth int, cfg Config) {
	if depth >= cfg.BSPDepth {
		return
	}

	// A child must hold a minimum-size room inset by one tile on each side.
	minChildW := cfg.MinRoomSize.W + 2
	minChildH := cfg.MinRoomSize.H + 2

	canSplitV := node.width >= 2*minChildW
	canSplitH := node.height >= 2*minChildH
	if !canSplitV && !canSplitH {
		return
	}

	// Force a split along the long axis past a 1.5:1 aspect ratio,
	// otherwise choose randomly among the axes that still fit.
	var horizontal bool
	switch {
	case canSplitV && float64(node.width) > float64(node.height)*1.5:
		horizontal = false
	case canSplitH && float64(node.height) > float64(node.width)*1.5:
		horizontal = true
	case canSplitV && canSplitH:
		horizontal = g.rng.Intn(2) == 0
	default:
		horizontal = canSplitH
	}

	if horizontal {
		splitRange := node.height - 2*minChildH
		splitPos := minChildH
		if splitRange > 0 {
			splitPos += g.rng.Intn(splitRange + 1)
		}
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		splitRange := node.width - 2*minChildW
		splitPos := minChildW
		if splitRange > 0 {
			splitPos += g.rng.Intn(splitRange + 1)
		}
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(node.left, depth+1, cfg)
	g.splitNode(node.right, depth+1, cfg)
}

// createRoomsInLeaves generates one room per leaf partition, sized randomly
// within the partition inset by at least one tile, and stamps it into the grid.
func (g *DungeonGenerator) createRoomsInLeaves(node *bspNode, grid *Grid, cfg Config, rooms *[]*Room) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRoomsInLeaves(node.left, grid, cfg, rooms)
		}
		if node.right != nil {
			g.createRoomsInLeaves(node.right, grid, cfg, rooms)
		}
		return
	}

	availW := node.width - 2
	availH := node.height - 2
	if availW < cfg.MinRoomSize.W || availH < cfg.MinRoomSize.H {
		return // partition too small for a room
	}

	maxW := min(availW, cfg.MaxRoomSize.W)
	maxH := min(availH, cfg.MaxRoomSize.H)
	w := cfg.MinRoomSize.W + g.rng.Intn(maxW-cfg.MinRoomSize.W+1)
	h := cfg.MinRoomSize.H + g.rng.Intn(maxH-cfg.MinRoomSize.H+1)
	x := node.x + 1 + g.rng.Intn(availW-w+1)
	y := node.y + 1 + g.rng.Intn(availH-h+1)

	room := &Room{ID: len(*rooms), X: x, Y: y, Width: w, Height: h}
	g.stampRoom(grid, room)
	node.room = room
	*rooms = append(*rooms, room)
}

// connectSubtrees carves a corridor between representative rooms of the two
// children of every internal node, bottom-up.
func (g *DungeonGenerator) connectSubtrees(node *bspNode, grid *Grid, cfg Config, corridors *[]*Corridor) {
	if node.left == nil || node.right == nil {
		return
	}
	g.connectSubtrees(node.left, grid, cfg, corridors)
	g.connectSubtrees(node.right, grid, cfg, corridors)

	leftRoom := findRoom(node.left)
	rightRoom := findRoom(node.right)
	if leftRoom == nil || rightRoom == nil {
		return
	}
	connect(leftRoom, rightRoom)
	*corridors = append(*corridors, g.carveCorridor(grid, leftRoom.Center(), rightRoom.Center(), cfg.CorridorWidth))
}

// findRoom finds a room in the subtree rooted at the given node.
func findRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := findRoom(node.left); room != nil {
		return room
	}
	return findRoom(node.right)
}
