package generation

// roomEdge is one undirected edge of the room connectivity graph.
type roomEdge struct {
	a, b *Room
}

// spanningTreeGraph builds a minimum spanning tree over the rooms using
// Prim-style growth: keep a connected set, repeatedly pull in the frontier
// room closest (Euclidean, between rectangle centers) to any connected room.
// Ties resolve to the first minimal pair in iteration order, so the tree is
// stable for a given room list.
func (g *DungeonGenerator) spanningTreeGraph(rooms []*Room) []roomEdge {
	if len(rooms) < 2 {
		return nil
	}
	connected := []*Room{rooms[0]}
	frontier := make([]*Room, len(rooms)-1)
	copy(frontier, rooms[1:])

	var edges []roomEdge
	for len(frontier) > 0 {
		var bestFrom, bestTo *Room
		bestIdx := -1
		bestDist := 0.0
		for _, from := range connected {
			for i, to := range frontier {
				d := from.Center().distanceTo(to.Center())
				if bestIdx == -1 || d < bestDist {
					bestFrom, bestTo, bestIdx, bestDist = from, to, i, d
				}
			}
		}
		connect(bestFrom, bestTo)
		edges = append(edges, roomEdge{a: bestFrom, b: bestTo})
		connected = append(connected, bestTo)
		frontier = append(frontier[:bestIdx], frontier[bestIdx+1:]...)
	}
	return edges
}

// nearestNeighborGraph connects each room to its k nearest rooms it is not
// already connected to. Unlike the spanning tree this takes no global view,
// so the resulting graph may have disjoint components.
func (g *DungeonGenerator) nearestNeighborGraph(rooms []*Room, k int) []roomEdge {
	var edges []roomEdge
	for _, room := range rooms {
		for n := 0; n < k; n++ {
			var nearest *Room
			bestDist := 0.0
			for _, other := range rooms {
				if other == room || room.ConnectedTo(other) {
					continue
				}
				d := room.Center().distanceTo(other.Center())
				if nearest == nil || d < bestDist {
					nearest = other
					bestDist = d
				}
			}
			if nearest == nil {
				break
			}
			connect(room, nearest)
			edges = append(edges, roomEdge{a: room, b: nearest})
		}
	}
	return edges
}

// loopEdges rolls each room for one extra edge to a random room it is not yet
// connected to, adding cycles for navigational variety.
func (g *DungeonGenerator) loopEdges(rooms []*Room, chance float64) []roomEdge {
	var edges []roomEdge
	for _, room := range rooms {
		if g.rng.Float64() >= chance {
			continue
		}
		var candidates []*Room
		for _, other := range rooms {
			if other != room && !room.ConnectedTo(other) {
				candidates = append(candidates, other)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		target := candidates[g.rng.Intn(len(candidates))]
		connect(room, target)
		edges = append(edges, roomEdge{a: room, b: target})
	}
	return edges
}
