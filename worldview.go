package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeonforge/config"
	"dungeonforge/generation"
)

// biomeColors maps each biome to its display color.
var biomeColors = map[generation.Biome]color.RGBA{
	generation.BiomeWater:      {40, 70, 150, 255},
	generation.BiomeWasteland:  {130, 120, 90, 255},
	generation.BiomeDesert:     {200, 180, 110, 255},
	generation.BiomeDarkForest: {30, 80, 40, 255},
	generation.BiomeMountains:  {120, 120, 130, 255},
}

// WorldMapViewer implements ebiten.Game and renders the generated overworld
// with a free camera.
type WorldMapViewer struct {
	gen    *generation.WorldMapGenerator
	world  *generation.WorldMap
	canvas *ebiten.Image
	camX   int
	camY   int
}

// NewWorldMapViewer generates a world map and positions the camera at its
// center.
func NewWorldMapViewer(seed int64) *WorldMapViewer {
	v := &WorldMapViewer{
		gen:  generation.NewWorldMapGenerator(seed),
		camX: config.WorldMapWidth / 2,
		camY: config.WorldMapHeight / 2,
	}
	v.regenerate()
	return v
}

func (v *WorldMapViewer) regenerate() {
	v.world = v.gen.Generate(config.WorldMapWidth, config.WorldMapHeight)
	v.canvas = ebiten.NewImage(v.world.Width, v.world.Height)
	for y := 0; y < v.world.Height; y++ {
		for x := 0; x < v.world.Width; x++ {
			v.canvas.Set(x, y, biomeColors[v.world.Biomes[y][x]])
		}
	}
}

// Update moves the camera with the arrow keys and handles the other bindings.
func (v *WorldMapViewer) Update() error {
	const moveSpeed = 5

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.camY -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.camY += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.camX -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.camX += moveSpeed
	}

	// Keep the camera within map bounds.
	v.camX = min(max(v.camX, 0), v.world.Width-1)
	v.camY = min(max(v.camY, 0), v.world.Height-1)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.gen.SetSeed(time.Now().UnixNano())
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

// Draw renders the biome canvas scaled to the tile size, centered on the
// camera.
func (v *WorldMapViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.TileSize, config.TileSize)
	op.GeoM.Translate(
		float64(config.WindowWidth)/2-float64(v.camX*config.TileSize),
		float64(config.WindowHeight)/2-float64(v.camY*config.TileSize),
	)
	screen.DrawImage(v.canvas, op)

	ebitenutil.DebugPrint(screen, "World Map - arrow keys move the camera\n[R] regenerate  [F] fullscreen")
}

// Layout implements ebiten.Game's Layout.
func (v *WorldMapViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
