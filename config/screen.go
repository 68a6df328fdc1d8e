package config

// Screen layout configuration
const (
	// Tile size in pixels when rendering the dungeon view
	TileSize = 12

	// Default dungeon dimensions in tiles
	DungeonWidth  = 80
	DungeonHeight = 50

	// Default world map dimensions in tiles
	WorldMapWidth  = 200
	WorldMapHeight = 200

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = DungeonWidth * TileSize
	WindowHeight = DungeonHeight * TileSize
)

// GetWindowSize returns the recommended window size in pixels.
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
