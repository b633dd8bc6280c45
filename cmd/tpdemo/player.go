package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tileprops/tiles"
)

const (
	baseSpeed       = 120.0 // pixels per second
	knockbackScale  = 40.0
	hurtCooldown    = 30 // frames
	physicsStepRate = 1.0 / 60.0
)

// Player is a circle body driven by the tile properties under it.
type Player struct {
	space  *cp.Space
	body   *cp.Body
	radius float64
	img    *ebiten.Image

	Health   int
	hurt     int
	lastTile tiles.Tile
}

func NewPlayer(pos cp.Vector, radius float64) *Player {
	space := cp.NewSpace()
	body := cp.NewBody(1, cp.MomentForCircle(1, 0, radius, cp.Vector{}))
	body.SetPosition(pos)
	space.AddBody(body)
	space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))

	size := int(math.Ceil(radius * 2))
	img := ebiten.NewImage(size, size)
	img.Fill(colornames.Orange)

	return &Player{
		space:  space,
		body:   body,
		radius: radius,
		img:    img,
		Health: 5,
	}
}

func (p *Player) Position() cp.Vector {
	return p.body.Position()
}

// Update steers the body toward dir. Friction decides how quickly the
// velocity follows the input; a slide direction keeps slippery tiles moving
// when there is none.
func (p *Player) Update(dir cp.Vector, tile tiles.Tile, g *Game) {
	speed := baseSpeed * g.float(tile, "SpeedMultiplier", 1)
	friction := math.Max(0.01, math.Min(1, g.float(tile, "Friction", 1)))

	target := cp.Vector{}
	if dir.LengthSq() > 0 {
		target = dir.Normalize().Mult(speed)
	} else if slide := g.vector(tile, "SlideDirection"); slide.LengthSq() > 0 {
		target = slide.Normalize().Mult(speed * 0.25)
	}
	vel := p.body.Velocity().Lerp(target, friction)

	if p.hurt > 0 {
		p.hurt--
	}
	if tile != nil && tile != p.lastTile && p.hurt == 0 {
		if damage := g.integer(tile, "Damage"); damage > 0 {
			p.Health = max(0, p.Health-damage)
			p.hurt = hurtCooldown
			vel = vel.Add(g.vector(tile, "Knockback").Mult(knockbackScale))
		}
	}
	p.lastTile = tile

	p.body.SetVelocityVector(vel)
	p.space.Step(physicsStepRate)
}

// Clamp keeps the body inside a w by h area.
func (p *Player) Clamp(w, h float64) {
	pos := p.body.Position()
	clamped := cp.Vector{
		X: math.Max(p.radius, math.Min(w-p.radius, pos.X)),
		Y: math.Max(p.radius, math.Min(h-p.radius, pos.Y)),
	}
	if clamped != pos {
		p.body.SetPosition(clamped)
	}
}

func (p *Player) Draw(screen *ebiten.Image) {
	pos := p.body.Position()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X-p.radius, pos.Y-p.radius)
	if p.hurt > 0 && p.hurt/4%2 == 0 {
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff})
	}
	screen.DrawImage(p.img, op)
}
