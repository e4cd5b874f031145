package obj

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/gfx"
	"github.com/milk9111/cavern/units"
)

// Walk motion
const (
	walkingAcceleration units.Acceleration = 0.00083007812
	maxSpeedX           units.Velocity     = 0.15859375
	friction            units.Acceleration = 0.00049804587
)

// Fall motion
const (
	gravity   units.Acceleration = 0.00078125
	maxSpeedY units.Velocity     = 0.2998046875
)

// Jump motion
const (
	jumpSpeed       units.Velocity     = 0.25
	shortJumpSpeed                     = jumpSpeed / 1.5
	airAcceleration units.Acceleration = 0.0003125
	jumpGravity     units.Acceleration = 0.0003125
)

const (
	invincibleFlashTime units.MS = 50
	invincibleTime      units.MS = 3000

	playerMaxHealth units.HP = 6
)

// Axis collision boxes, offsets relative to the sprite's top-left. The
// horizontal box is wide and short, the vertical box narrow and tall, so
// each axis sweep only sees walls on its own axis.
var (
	collisionX = common.NewRectangle(6, 10, 20, 12)
	collisionY = common.NewRectangle(10, 2, 12, 30)
)

// Player is the controllable character. All physical state is owned here
// and mutated in place once per frame.
type Player struct {
	x, y                 units.Game
	velocityX, velocityY units.Velocity

	// accelerationX is the held horizontal intent: -1 left, 0 none, +1 right.
	accelerationX    int
	horizontalFacing horizontalFacing
	verticalFacing   verticalFacing
	onGround         bool
	jumpActive       bool
	interacting      bool

	health          *Health
	damageText      *DamageText
	invincibleTimer *common.Timer

	sprites map[spriteState]gfx.Sprite
}

// NewPlayer creates the player at (x, y) in game units. graphics may be nil
// for headless use; the physics core never touches it after construction.
func NewPlayer(graphics *gfx.Graphics, timers *common.Registry, x, y units.Game) *Player {
	p := &Player{
		x:                x,
		y:                y,
		horizontalFacing: facingLeft,
		verticalFacing:   facingHorizontal,
		health:           NewHealth(playerMaxHealth),
		damageText:       NewDamageText(timers),
		invincibleTimer:  timers.NewTimer(invincibleTime),
	}
	if graphics != nil {
		p.initializeSprites(graphics)
	}
	return p
}

// Update advances the player one frame: animation and timed displays first,
// then the horizontal axis resolved fully before the vertical axis starts.
func (p *Player) Update(elapsed units.MS, m *Map) {
	if s, ok := p.sprites[p.spriteState()]; ok {
		s.Update(elapsed)
	}

	p.health.Update(elapsed)
	p.damageText.Update(elapsed)

	p.updateX(elapsed, m)
	p.updateY(elapsed, m)
}

func (p *Player) Draw(screen *ebiten.Image) {
	if !p.spriteVisible() {
		return
	}
	if s, ok := p.sprites[p.spriteState()]; ok {
		s.Draw(screen, p.x, p.y)
	}
}

func (p *Player) DrawHUD(screen *ebiten.Image) {
	if p.spriteVisible() {
		p.health.Draw(screen)
	}
	p.damageText.Draw(screen, p.CenterX(), p.CenterY())
}

func (p *Player) StartMovingLeft() {
	p.accelerationX = -1
	p.horizontalFacing = facingLeft
	p.interacting = false
}

func (p *Player) StartMovingRight() {
	p.accelerationX = 1
	p.horizontalFacing = facingRight
	p.interacting = false
}

func (p *Player) StopMoving() {
	p.accelerationX = 0
}

func (p *Player) LookUp() {
	p.verticalFacing = facingUp
	p.interacting = false
}

// LookDown turns the player around when grounded; looking down while
// airborne only changes facing.
func (p *Player) LookDown() {
	if p.verticalFacing == facingDown {
		return
	}
	p.verticalFacing = facingDown
	p.interacting = p.onGround
}

func (p *Player) LookHorizontal() {
	p.verticalFacing = facingHorizontal
}

// StartJump applies the jump impulse when grounded; holding the jump key
// afterwards keeps the reduced jump gravity active while still ascending.
func (p *Player) StartJump() {
	p.jumpActive = true
	p.interacting = false

	if p.onGround {
		p.velocityY = -jumpSpeed
	}
}

func (p *Player) StopJump() {
	p.jumpActive = false
}

// TakeDamage applies contact damage unless the invincibility window is
// open. The knockback hop only caps velocity upward; a faster ascent is
// left alone.
func (p *Player) TakeDamage(damage units.HP) {
	if p.invincibleTimer.Active() {
		return
	}

	p.health.TakeDamage(damage)
	p.damageText.SetDamage(damage)

	p.velocityY = min(p.velocityY, -shortJumpSpeed)

	p.invincibleTimer.Reset()
}

func (p *Player) X() units.Game       { return p.x }
func (p *Player) Y() units.Game       { return p.y }
func (p *Player) CenterX() units.Game { return p.x + units.HalfTile }
func (p *Player) CenterY() units.Game { return p.y + units.HalfTile }
func (p *Player) OnGround() bool      { return p.onGround }
func (p *Player) Health() units.HP    { return p.health.Current() }

// DamageRectangle is the box other actors test contact damage against.
func (p *Player) DamageRectangle() common.Rectangle {
	return common.NewRectangle(
		p.x+collisionX.Left,
		p.y+collisionY.Top,
		collisionX.Width,
		collisionY.Height,
	)
}

// spriteState derives the animation state from physical state. Pure
// function; no side effects.
func (p *Player) spriteState() spriteState {
	var motion motionType
	switch {
	case p.interacting:
		motion = interacting
	case p.onGround:
		if p.accelerationX != 0 {
			motion = walking
		} else {
			motion = standing
		}
	default:
		if p.velocityY < 0 {
			motion = jumping
		} else {
			motion = falling
		}
	}
	return spriteState{motion: motion, horizontal: p.horizontalFacing, vertical: p.verticalFacing}
}

// spriteVisible implements the invincibility flicker: hidden on alternating
// fixed-length windows while the timer is active, always visible otherwise.
func (p *Player) spriteVisible() bool {
	return !(p.invincibleTimer.Active() &&
		p.invincibleTimer.CurrentTime()/invincibleFlashTime%2 == 0)
}

func (p *Player) updateX(elapsed units.MS, m *Map) {
	acceleration := airAcceleration
	if p.onGround {
		acceleration = walkingAcceleration
	}
	acceleration *= units.Acceleration(p.accelerationX)

	p.velocityX += acceleration.Over(elapsed)
	switch {
	case p.accelerationX < 0:
		p.velocityX = max(p.velocityX, -maxSpeedX)
	case p.accelerationX > 0:
		p.velocityX = min(p.velocityX, maxSpeedX)
	case p.onGround:
		// Friction decays toward zero without overshooting it.
		if p.velocityX > 0 {
			p.velocityX = max(0, p.velocityX-friction.Over(elapsed))
		} else {
			p.velocityX = min(0, p.velocityX+friction.Over(elapsed))
		}
	}

	delta := p.velocityX.Over(elapsed)
	if delta > 0 {
		p.runLeading(m, sweepRight, p.rightCollision(delta), delta, &p.x, &p.velocityX, snapLeftOfWall)
		p.runTrailing(m, sweepRight, p.leftCollision(0), &p.x, snapRightOfWall)
	} else {
		p.runLeading(m, sweepLeft, p.leftCollision(delta), delta, &p.x, &p.velocityX, snapRightOfWall)
		p.runTrailing(m, sweepLeft, p.rightCollision(0), &p.x, snapLeftOfWall)
	}
}

func (p *Player) updateY(elapsed units.MS, m *Map) {
	// Reduced gravity while the jump is held and still ascending gives the
	// variable jump height.
	g := gravity
	if p.jumpActive && p.velocityY < 0 {
		g = jumpGravity
	}
	p.velocityY = min(p.velocityY+g.Over(elapsed), maxSpeedY)

	delta := p.velocityY.Over(elapsed)
	if delta > 0 {
		p.runLeading(m, sweepDown, p.bottomCollision(delta), delta, &p.y, &p.velocityY, snapAboveWall)
		p.runTrailing(m, sweepDown, p.topCollision(0), &p.y, snapBelowWall)
	} else {
		p.runLeading(m, sweepUp, p.topCollision(delta), delta, &p.y, &p.velocityY, snapBelowWall)
		p.runTrailing(m, sweepUp, p.bottomCollision(0), &p.y, snapAboveWall)
	}
}
