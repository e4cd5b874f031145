package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/gfx"
	"github.com/milk9111/cavern/units"
)

const (
	numFlyFrames units.Frame = 3
	flyFps       units.FPS   = 13

	flightAngularVelocity units.AngularVelocity = 120.0 / 1000.0
	flightAmplitude       units.Game            = 5 * units.HalfTile

	batContactDamage units.HP = 1

	batSheetPath = "assets/npc_cemet.png"
)

// batSpriteState keys the bat's sprite map; facing is its whole state space.
type batSpriteState struct {
	facing horizontalFacing
}

// FlyingEnemy is the cave bat. It bobs on a fixed sinusoid around its spawn
// height, turns toward the tracked player, and deals contact damage.
type FlyingEnemy struct {
	centerY units.Game
	x, y    units.Game

	flightAngle units.Degrees
	facing      horizontalFacing

	sprites map[batSpriteState]gfx.Sprite
}

// NewFlyingEnemy creates the bat at (x, y); y becomes the center of its
// flight path. graphics may be nil for headless use.
func NewFlyingEnemy(graphics *gfx.Graphics, x, y units.Game) *FlyingEnemy {
	e := &FlyingEnemy{
		centerY: y,
		x:       x,
		y:       y,
		facing:  facingRight,
	}
	if graphics != nil {
		e.initializeSprites(graphics)
	}
	return e
}

func (e *FlyingEnemy) initializeSprites(graphics *gfx.Graphics) {
	e.sprites = make(map[batSpriteState]gfx.Sprite, int(numHorizontalFacings))
	for facing := horizontalFacing(0); facing < numHorizontalFacings; facing++ {
		tileY := units.Tile(2)
		if facing == facingRight {
			tileY = 3
		}
		e.sprites[batSpriteState{facing: facing}] = gfx.NewAnimatedSprite(
			graphics, batSheetPath,
			units.TileToPixel(2), units.TileToPixel(tileY),
			units.TileToPixel(1), units.TileToPixel(1),
			flyFps, numFlyFrames,
		)
	}
}

// Update advances the flight phase and turns toward the player's x.
func (e *FlyingEnemy) Update(elapsed units.MS, playerX units.Game) {
	e.flightAngle += flightAngularVelocity.Over(elapsed)

	e.facing = facingRight
	if e.x+units.HalfTile > playerX {
		e.facing = facingLeft
	}

	e.y = e.centerY +
		flightAmplitude*units.Game(math.Sin(units.DegreesToRadians(e.flightAngle)))

	if s, ok := e.sprites[batSpriteState{facing: e.facing}]; ok {
		s.Update(elapsed)
	}
}

func (e *FlyingEnemy) Draw(screen *ebiten.Image) {
	if s, ok := e.sprites[batSpriteState{facing: e.facing}]; ok {
		s.Draw(screen, e.x, e.y)
	}
}

// DamageRectangle is the zero-size contact point tested against the
// player's damage rectangle.
func (e *FlyingEnemy) DamageRectangle() common.Rectangle {
	return common.NewRectangle(e.x+units.HalfTile, e.y+units.HalfTile, 0, 0)
}

func (e *FlyingEnemy) ContactDamage() units.HP { return batContactDamage }

func (e *FlyingEnemy) X() units.Game { return e.x }
func (e *FlyingEnemy) Y() units.Game { return e.y }
