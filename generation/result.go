package generation

// DungeonResult is the finalized output of one generation pass. It is pure
// data; rendering, collision geometry and entity spawning are the caller's
// concern.
type DungeonResult struct {
	Grid      *Grid
	Rooms     []*Room
	Corridors []*Corridor
	Entrance  Point
	Exit      Point

	// SpecialRooms maps each non-normal room type to the center coordinates
	// of the rooms carrying it.
	SpecialRooms map[RoomType][]Point
}

// GraphEdges returns the number of undirected edges in the room connectivity
// graph, including any edges added by the connectivity-repair pass.
func (r *DungeonResult) GraphEdges() int {
	total := 0
	for _, room := range r.Rooms {
		total += len(room.Connections)
	}
	return total / 2
}

// RoomsOfType returns all rooms tagged with the given type.
func (r *DungeonResult) RoomsOfType(rt RoomType) []*Room {
	var rooms []*Room
	for _, room := range r.Rooms {
		if room.Type == rt {
			rooms = append(rooms, room)
		}
	}
	return rooms
}
