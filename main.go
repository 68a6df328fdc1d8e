package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"dungeonforge/config"
	"dungeonforge/generation"
)

func main() {
	var (
		seed      = flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
		width     = flag.Int("width", config.DungeonWidth, "dungeon width in tiles")
		height    = flag.Int("height", config.DungeonHeight, "dungeon height in tiles")
		rooms     = flag.Int("rooms", 0, "number of rooms to place (0 uses the default)")
		generator = flag.String("generator", "random", "room generator: random, bsp or cellular")
		loops     = flag.Bool("loops", false, "add loop corridors on top of the spanning tree")
		ascii     = flag.Bool("ascii", false, "print the dungeon to stdout instead of opening a window")
		worldMap  = flag.Bool("world-map", false, "show the overworld biome map instead of a dungeon")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *worldMap {
		tester := NewWorldMapViewer(*seed)
		ebiten.SetWindowSize(config.GetWindowSize())
		ebiten.SetWindowTitle("DungeonForge - World Map")
		if err := ebiten.RunGame(tester); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg := generation.Config{
		Width:           *width,
		Height:          *height,
		RoomCount:       *rooms,
		Seed:            *seed,
		Generator:       parseGenerator(*generator),
		ConnectAllRooms: true,
		AddLoops:        *loops,
		LoopChance:      0.2,
	}

	if *ascii {
		result, err := generation.NewDungeonGenerator().Generate(cfg)
		if err != nil {
			log.Fatal(err)
		}
		printDungeon(result)
		return
	}

	viewer := NewDungeonViewer(cfg)
	ebiten.SetWindowSize(config.GetWindowSize())
	ebiten.SetWindowTitle("DungeonForge")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}

// parseGenerator maps the flag value to a generator type, defaulting to
// random placement on unknown input.
func parseGenerator(name string) generation.GeneratorType {
	switch name {
	case "bsp":
		return generation.GeneratorBSP
	case "cellular":
		return generation.GeneratorCellular
	default:
		return generation.GeneratorRandom
	}
}

// printDungeon writes the grid to stdout, one rune per tile.
func printDungeon(result *generation.DungeonResult) {
	runes := map[generation.Tile]rune{
		generation.TileEmpty:      ' ',
		generation.TileFloor:      '.',
		generation.TileWall:       '#',
		generation.TileDoor:       '+',
		generation.TileCorridor:   ',',
		generation.TileEntrance:   '<',
		generation.TileExit:       '>',
		generation.TileChest:      '$',
		generation.TileTrap:       '^',
		generation.TileDecoration: '*',
	}
	grid := result.Grid
	for y := 0; y < grid.Height; y++ {
		line := make([]rune, grid.Width)
		for x := 0; x < grid.Width; x++ {
			line[x] = runes[grid.Tiles[y][x]]
		}
		fmt.Println(string(line))
	}
	fmt.Printf("rooms: %d  corridors: %d  entrance: (%d,%d)  exit: (%d,%d)\n",
		len(result.Rooms), len(result.Corridors),
		result.Entrance.X, result.Entrance.Y, result.Exit.X, result.Exit.Y)
}
