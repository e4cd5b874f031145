package obj

import (
	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/units"
)

// The resolver runs two passes per axis: the leading-edge pass sweeps the
// half of the collision box facing the motion, extended by the frame's
// delta; the trailing-edge pass re-queries the opposite edge with zero
// extension to snap out of walls the leading pass ended up embedded in.
// The side effects of each {direction, pass} cell live in the rule tables
// below rather than inline conditionals.

type sweepDirection int

const (
	sweepLeft sweepDirection = iota
	sweepRight
	sweepUp
	sweepDown
)

type groundedEffect int

const (
	groundedKeep groundedEffect = iota
	groundedSet
	groundedClear
)

// sweepRule is one cell of the resolver's rule table. onMiss applies only to
// leading passes, which are the only passes that move the actor.
type sweepRule struct {
	zeroVelocity bool
	onHit        groundedEffect
	onMiss       groundedEffect
}

var leadingRules = map[sweepDirection]sweepRule{
	sweepRight: {zeroVelocity: true},
	sweepLeft:  {zeroVelocity: true},
	sweepDown:  {zeroVelocity: true, onHit: groundedSet, onMiss: groundedClear},
	sweepUp:    {zeroVelocity: true, onHit: groundedClear, onMiss: groundedClear},
}

// trailingRules are keyed by the motion direction; the pass itself queries
// the opposite edge. The sweepUp cell grounding the player is landing
// detection: the bottom recheck after an upward move means something pushed
// the actor down onto a surface.
// TODO: confirm the sweepLeft grounding is intentional. It mirrors the
// sweepUp cell but no leftward scenario seems to need it.
var trailingRules = map[sweepDirection]sweepRule{
	sweepRight: {},
	sweepLeft:  {onHit: groundedSet},
	sweepUp:    {onHit: groundedSet},
	sweepDown:  {},
}

// Collision rectangle builders. A wrong-signed delta means a broken caller
// invariant, not a runtime condition; fail fast.

func (p *Player) leftCollision(delta units.Game) common.Rectangle {
	if delta > 0 {
		panic("leftCollision requires delta <= 0")
	}
	return common.NewRectangle(
		p.x+collisionX.Left+delta,
		p.y+collisionX.Top,
		collisionX.Width/2-delta,
		collisionX.Height,
	)
}

func (p *Player) rightCollision(delta units.Game) common.Rectangle {
	if delta < 0 {
		panic("rightCollision requires delta >= 0")
	}
	return common.NewRectangle(
		p.x+collisionX.Left+collisionX.Width/2,
		p.y+collisionX.Top,
		collisionX.Width/2+delta,
		collisionX.Height,
	)
}

func (p *Player) topCollision(delta units.Game) common.Rectangle {
	if delta > 0 {
		panic("topCollision requires delta <= 0")
	}
	return common.NewRectangle(
		p.x+collisionY.Left,
		p.y+collisionY.Top+delta,
		collisionY.Width,
		collisionY.Height/2-delta,
	)
}

func (p *Player) bottomCollision(delta units.Game) common.Rectangle {
	if delta < 0 {
		panic("bottomCollision requires delta >= 0")
	}
	return common.NewRectangle(
		p.x+collisionY.Left,
		p.y+collisionY.Top+collisionY.Height/2,
		collisionY.Width,
		collisionY.Height/2+delta,
	)
}

// Snap targets place the relevant edge of the collision box exactly on the
// near boundary of the wall tile.

func snapLeftOfWall(tile CollisionTile) units.Game {
	return units.TileToGame(tile.Col) - collisionX.Right()
}

func snapRightOfWall(tile CollisionTile) units.Game {
	return units.TileToGame(tile.Col) + collisionX.Right()
}

func snapAboveWall(tile CollisionTile) units.Game {
	return units.TileToGame(tile.Row) - collisionY.Bottom()
}

func snapBelowWall(tile CollisionTile) units.Game {
	return units.TileToGame(tile.Row) + collisionY.Height
}

// firstWallTile scans the grid query in traversal order for the first wall.
func firstWallTile(m *Map, rect common.Rectangle) (CollisionTile, bool) {
	for _, tile := range m.CollidingTiles(rect) {
		if tile.Type == WallTile {
			return tile, true
		}
	}
	return CollisionTile{}, false
}

// runLeading applies a leading-edge pass: snap to the first wall and apply
// the cell's side effects, or move by the full delta.
func (p *Player) runLeading(
	m *Map,
	dir sweepDirection,
	query common.Rectangle,
	delta units.Game,
	pos *units.Game,
	vel *units.Velocity,
	snap func(CollisionTile) units.Game,
) {
	rule := leadingRules[dir]
	if tile, hit := firstWallTile(m, query); hit {
		*pos = snap(tile)
		if rule.zeroVelocity {
			*vel = 0
		}
		p.applyGrounded(rule.onHit)
		return
	}
	*pos += delta
	p.applyGrounded(rule.onMiss)
}

// runTrailing applies the zero-extension recheck on the opposite edge.
func (p *Player) runTrailing(
	m *Map,
	dir sweepDirection,
	query common.Rectangle,
	pos *units.Game,
	snap func(CollisionTile) units.Game,
) {
	rule := trailingRules[dir]
	tile, hit := firstWallTile(m, query)
	if !hit {
		return
	}
	*pos = snap(tile)
	p.applyGrounded(rule.onHit)
}

func (p *Player) applyGrounded(effect groundedEffect) {
	switch effect {
	case groundedSet:
		p.onGround = true
	case groundedClear:
		p.onGround = false
	}
}
