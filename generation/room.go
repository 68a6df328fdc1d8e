package generation

import "math"

// Point is an integer tile coordinate.
type Point struct {
	X, Y int
}

// distanceTo returns the Euclidean distance between two points.
func (p Point) distanceTo(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// RoomType tags the role a room plays in the finished dungeon.
type RoomType int

const (
	RoomNormal RoomType = iota
	RoomEntrance
	RoomExit
	RoomTreasure
	RoomBoss
)

// String returns a short name for the room type.
func (rt RoomType) String() string {
	switch rt {
	case RoomNormal:
		return "normal"
	case RoomEntrance:
		return "entrance"
	case RoomExit:
		return "exit"
	case RoomTreasure:
		return "treasure"
	case RoomBoss:
		return "boss"
	}
	return "unknown"
}

// Room is an axis-aligned rectangular room. Rooms are placed once and never
// resized; only Type and Connections change after placement.
type Room struct {
	ID                  int
	X, Y, Width, Height int
	Type                RoomType
	Tiles               []Point // member tile coordinates, recorded when the room is stamped
	Connections         []*Room
}

// Center returns the tile coordinate at the middle of the room.
func (r *Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether this room's rectangle, grown by margin on every
// side, overlaps the other room's rectangle.
func (r *Room) Intersects(other *Room, margin int) bool {
	return r.X-margin < other.X+other.Width &&
		r.X+r.Width+margin > other.X &&
		r.Y-margin < other.Y+other.Height &&
		r.Y+r.Height+margin > other.Y
}

// ConnectedTo reports whether the room already has a graph edge to other.
func (r *Room) ConnectedTo(other *Room) bool {
	for _, c := range r.Connections {
		if c == other {
			return true
		}
	}
	return false
}

// connect adds an undirected graph edge between two rooms.
func connect(a, b *Room) {
	a.Connections = append(a.Connections, b)
	b.Connections = append(b.Connections, a)
}

// Corridor is a carved tile path between two points. Created once per graph
// edge and immutable afterward.
type Corridor struct {
	Start Point
	End   Point
	Width int
	Path  []Point // every tile actually carved, in carve order
}
