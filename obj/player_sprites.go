package obj

import (
	"github.com/milk9111/cavern/gfx"
	"github.com/milk9111/cavern/units"
)

const playerSheetPath = "assets/mychar.png"

// Sheet layout: one tile per frame, facing-left row first, facing-right row
// below it. Looking up shifts the column block; looking down while airborne
// uses its own frame.
const (
	characterFrame units.Tile = 0

	walkFrame     units.Tile = 0
	standFrame    units.Tile = 0
	jumpFrame     units.Tile = 1
	fallFrame     units.Tile = 2
	upFrameOffset units.Tile = 3
	downFrame     units.Tile = 6
	backFrame     units.Tile = 7

	numWalkFrames units.Frame = 3
	walkFps       units.FPS   = 15
)

// initializeSprites populates the sprite map over the full cross-product of
// the state space; it is read-only afterwards.
func (p *Player) initializeSprites(graphics *gfx.Graphics) {
	states := allSpriteStates()
	p.sprites = make(map[spriteState]gfx.Sprite, len(states))
	for _, state := range states {
		p.initializeSprite(graphics, state)
	}
}

func (p *Player) initializeSprite(graphics *gfx.Graphics, state spriteState) {
	tileY := characterFrame
	if state.horizontal == facingRight {
		tileY = characterFrame + 1
	}

	var tileX units.Tile
	switch state.motion {
	case walking:
		tileX = walkFrame
	case standing:
		tileX = standFrame
	case interacting:
		tileX = backFrame
	case jumping:
		tileX = jumpFrame
	case falling:
		tileX = fallFrame
	}
	if state.vertical == facingUp {
		tileX += upFrameOffset
	}

	if state.motion == walking {
		p.sprites[state] = gfx.NewAnimatedSprite(
			graphics, playerSheetPath,
			units.TileToPixel(tileX), units.TileToPixel(tileY),
			units.TileToPixel(1), units.TileToPixel(1),
			walkFps, numWalkFrames,
		)
		return
	}

	if state.vertical == facingDown && (state.motion == jumping || state.motion == falling) {
		tileX = downFrame
	}
	p.sprites[state] = gfx.NewSprite(
		graphics, playerSheetPath,
		units.TileToPixel(tileX), units.TileToPixel(tileY),
		units.TileToPixel(1), units.TileToPixel(1),
	)
}
