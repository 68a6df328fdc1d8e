package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRooms(n int) []*Room {
	// Rooms laid out on a diagonal so nearest-neighbor distances are
	// unambiguous.
	rooms := make([]*Room, n)
	for i := 0; i < n; i++ {
		rooms[i] = &Room{ID: i, X: i * 10, Y: i * 8, Width: 5, Height: 5}
	}
	return rooms
}

func TestSpanningTreeConnectsAllRooms(t *testing.T) {
	rooms := testRooms(8)
	edges := NewDungeonGenerator().spanningTreeGraph(rooms)

	require.Len(t, edges, len(rooms)-1)
	assertGraphConnected(t, rooms)
}

func TestSpanningTreeIsStable(t *testing.T) {
	// Prim growth uses no randomness; two runs over identical room lists
	// must pick identical edges.
	first := testRooms(6)
	second := testRooms(6)
	a := NewDungeonGenerator().spanningTreeGraph(first)
	b := NewDungeonGenerator().spanningTreeGraph(second)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].a.ID, b[i].a.ID)
		assert.Equal(t, a[i].b.ID, b[i].b.ID)
	}
}

func TestNearestNeighborGraph(t *testing.T) {
	rooms := testRooms(6)
	g := NewDungeonGenerator()
	g.nearestNeighborGraph(rooms, 3)

	// Every room asked for three neighbors; edges are mutual, so each room
	// ends up with at least three connections.
	for _, room := range rooms {
		assert.GreaterOrEqual(t, len(room.Connections), 3, "room %d", room.ID)
	}
	for _, room := range rooms {
		for _, c := range room.Connections {
			assert.NotSame(t, room, c)
		}
	}
}

func TestLoopEdgesWithFullChance(t *testing.T) {
	rooms := testRooms(5)
	g := NewDungeonGenerator()
	g.SetSeed(7)
	g.spanningTreeGraph(rooms)

	edges := g.loopEdges(rooms, 1.0)
	assert.NotEmpty(t, edges)
	for _, e := range edges {
		assert.NotSame(t, e.a, e.b)
	}
}

func TestLoopEdgesWithZeroChance(t *testing.T) {
	rooms := testRooms(5)
	g := NewDungeonGenerator()
	g.spanningTreeGraph(rooms)

	assert.Empty(t, g.loopEdges(rooms, 0.0))
}

// assertGraphConnected walks the connection lists from the first room and
// checks every room is visited.
func assertGraphConnected(t *testing.T, rooms []*Room) {
	t.Helper()
	visited := make(map[int]bool)
	queue := []*Room{rooms[0]}
	visited[rooms[0].ID] = true
	for len(queue) > 0 {
		room := queue[0]
		queue = queue[1:]
		for _, c := range room.Connections {
			if !visited[c.ID] {
				visited[c.ID] = true
				queue = append(queue, c)
			}
		}
	}
	assert.Len(t, visited, len(rooms))
}
