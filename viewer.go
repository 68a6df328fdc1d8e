package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeonforge/config"
	"dungeonforge/generation"
)

// tileColors maps each tile kind to its display color.
var tileColors = map[generation.Tile]color.RGBA{
	generation.TileEmpty:      {0, 0, 0, 255},
	generation.TileFloor:      {110, 100, 85, 255},
	generation.TileWall:       {60, 60, 70, 255},
	generation.TileDoor:       {150, 100, 40, 255},
	generation.TileCorridor:   {90, 85, 75, 255},
	generation.TileEntrance:   {60, 180, 60, 255},
	generation.TileExit:       {180, 60, 60, 255},
	generation.TileChest:      {200, 170, 40, 255},
	generation.TileTrap:       {170, 50, 120, 255},
	generation.TileDecoration: {80, 120, 140, 255},
}

// DungeonViewer implements ebiten.Game and renders generated dungeons,
// regenerating on demand.
type DungeonViewer struct {
	gen    *generation.DungeonGenerator
	cfg    generation.Config
	result *generation.DungeonResult
	err    error
	canvas *ebiten.Image
}

// NewDungeonViewer creates a viewer and generates the first dungeon.
func NewDungeonViewer(cfg generation.Config) *DungeonViewer {
	v := &DungeonViewer{
		gen: generation.NewDungeonGenerator(),
		cfg: cfg,
	}
	v.regenerate()
	return v
}

// regenerate runs the generator with the current configuration and redraws
// the canvas.
func (v *DungeonViewer) regenerate() {
	v.result, v.err = v.gen.Generate(v.cfg)
	if v.err != nil {
		v.canvas = nil
		return
	}

	grid := v.result.Grid
	v.canvas = ebiten.NewImage(grid.Width, grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			v.canvas.Set(x, y, tileColors[grid.Tiles[y][x]])
		}
	}
}

// Update handles the viewer key bindings.
func (v *DungeonViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.cfg.Seed = time.Now().UnixNano()
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.cfg.Generator = nextGenerator(v.cfg.Generator)
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

// Draw renders the dungeon canvas scaled to the tile size.
func (v *DungeonViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if v.err != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("generation failed: %v\n[R] retry  [G] switch generator", v.err))
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.TileSize, config.TileSize)
	screen.DrawImage(v.canvas, op)

	status := fmt.Sprintf("%s  seed %d  rooms %d\n[R] regenerate  [G] generator  [F] fullscreen",
		generatorName(v.cfg.Generator), v.cfg.Seed, len(v.result.Rooms))
	ebitenutil.DebugPrint(screen, status)
}

// Layout implements ebiten.Game's Layout.
func (v *DungeonViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// nextGenerator cycles random -> bsp -> cellular -> random.
func nextGenerator(t generation.GeneratorType) generation.GeneratorType {
	switch t {
	case generation.GeneratorRandom:
		return generation.GeneratorBSP
	case generation.GeneratorBSP:
		return generation.GeneratorCellular
	default:
		return generation.GeneratorRandom
	}
}

func generatorName(t generation.GeneratorType) string {
	switch t {
	case generation.GeneratorBSP:
		return "bsp"
	case generation.GeneratorCellular:
		return "cellular"
	default:
		return "random"
	}
}
