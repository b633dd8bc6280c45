package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/tileprops/levels"
	"github.com/milk9111/tileprops/store"
	"github.com/milk9111/tileprops/tiles"
	"github.com/milk9111/tileprops/variable"
)

var untinted = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

type Game struct {
	props  *store.Store
	level  *levels.Level
	player *Player
	strict bool

	tileImg *ebiten.Image
	face    ebtext.Face

	paused bool
	ui     *ebitenui.UI
	frames int
}

func NewGame(props *store.Store, lvl *levels.Level, strict bool) *Game {
	tileImg := ebiten.NewImage(lvl.TileW, lvl.TileH)
	tileImg.Fill(color.White)

	spawn := cellCenter(lvl, lvl.SpawnX, lvl.SpawnY)
	return &Game{
		props:   props,
		level:   lvl,
		player:  NewPlayer(spawn, float64(lvl.TileW)/3),
		strict:  strict,
		tileImg: tileImg,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	g.frames++
	if !g.props.IsReady() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			g.ui = NewInspectorUI(g, g.tileUnderPlayer())
		}
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.player.Update(g.readInput(), g.tileUnderPlayer(), g)
	g.player.Clamp(float64(g.level.Width*g.level.TileW), float64(g.level.Height*g.level.TileH))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.props.IsReady() {
		g.drawText(screen, fmt.Sprintf("loading property lists%s", strings.Repeat(".", g.frames/20%4)), 8, 8)
		return
	}

	for y := 0; y < g.level.Height; y++ {
		for x := 0; x < g.level.Width; x++ {
			tile := g.level.TopTileAt(x, y)
			if tile == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*g.level.TileW), float64(y*g.level.TileH))
			tint := g.tint(tile)
			op.ColorScale.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, float32(tint.A)/255)
			screen.DrawImage(g.tileImg, op)
		}
	}

	g.player.Draw(screen)
	g.drawHUD(screen)

	if g.paused && g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.level.Width * g.level.TileW, g.level.Height * g.level.TileH
}

func (g *Game) readInput() cp.Vector {
	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Y++
	}
	return dir
}

func (g *Game) tileUnderPlayer() tiles.Tile {
	pos := g.player.Position()
	return g.level.TopTileAt(int(pos.X)/g.level.TileW, int(pos.Y)/g.level.TileH)
}

// tint reads the Tint of the list affecting tile. Tiles without one are
// drawn grey.
func (g *Game) tint(tile tiles.Tile) color.NRGBA {
	list := g.props.ResolveByTile(tile, false)
	if list == nil || !g.props.HasProperty(list, "Tint") {
		return untinted
	}
	return store.GetAs[color.NRGBA](g.props, list, "Tint", g.strict)
}

// float reads a Float property of the list affecting tile, or fallback when
// the tile carries no such property.
func (g *Game) float(tile tiles.Tile, name string, fallback float64) float64 {
	list := g.props.ResolveByTile(tile, false)
	if list == nil || !g.props.HasProperty(list, name) {
		return fallback
	}
	return store.GetAs[float64](g.props, list, name, g.strict)
}

func (g *Game) vector(tile tiles.Tile, name string) cp.Vector {
	list := g.props.ResolveByTile(tile, false)
	if list == nil || !g.props.HasProperty(list, name) {
		return cp.Vector{}
	}
	return store.GetAs[cp.Vector](g.props, list, name, g.strict)
}

func (g *Game) integer(tile tiles.Tile, name string) int {
	list := g.props.ResolveByTile(tile, false)
	if list == nil || !g.props.HasProperty(list, name) {
		return 0
	}
	return store.GetAs[int](g.props, list, name, g.strict)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	tile := g.tileUnderPlayer()
	lines := []string{fmt.Sprintf("HP %d   FPS %.0f", g.player.Health, ebiten.ActualFPS())}
	if tile == nil {
		lines = append(lines, "tile: none")
	} else {
		listName := "-"
		if list := g.props.ResolveByTile(tile, false); list != nil {
			listName = list.Name
		}
		lines = append(lines,
			fmt.Sprintf("tile: %s (%s)", tile.TileName(), listName),
			fmt.Sprintf("speed x%.2f  friction %.2f", g.float(tile, "SpeedMultiplier", 1), g.float(tile, "Friction", 1)),
		)
	}
	lines = append(lines, "esc: inspect")
	g.drawText(screen, strings.Join(lines, "\n"), 8, 8)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, s, g.face, op)
}

// propertyLines formats every property of the list affecting tile.
func (g *Game) propertyLines(tile tiles.Tile) (string, []string) {
	list := g.props.ResolveByTile(tile, false)
	if list == nil {
		return "no property list", nil
	}
	lines := make([]string, 0, list.Len())
	for _, v := range list.Properties {
		lines = append(lines, fmt.Sprintf("%s (%s): %v", v.Name(), v.TypeName(), variable.EncodeValue(v.Get())))
	}
	return list.Name, lines
}

func cellCenter(lvl *levels.Level, x, y int) cp.Vector {
	return cp.Vector{
		X: float64(x*lvl.TileW) + float64(lvl.TileW)/2,
		Y: float64(y*lvl.TileH) + float64(lvl.TileH)/2,
	}
}
