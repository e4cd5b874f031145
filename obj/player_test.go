package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/units"
)

// floorTop is the top boundary of the test map's floor (row 12) in game
// units; a player standing on it has y == floorTop - collisionY.Bottom().
var (
	floorTop   = units.TileToGame(12)
	standingY  = floorTop - collisionY.Bottom()
	wallSnapX  = units.TileToGame(16) - collisionX.Right()
	spawnX     = units.TileToGame(10)
	frameTime  units.MS = 10
	maxStepped          = 2000
)

func newGroundedPlayer(t *testing.T, m *Map, x units.Game) *Player {
	t.Helper()
	p := NewPlayer(nil, common.NewRegistry(), x, standingY)
	p.Update(frameTime, m)
	require.True(t, p.onGround)
	require.Equal(t, standingY, p.y)
	return p
}

func TestRestOnFloorIsStable(t *testing.T) {
	m := NewTestMap()
	p := newGroundedPlayer(t, m, spawnX)

	for i := 0; i < 120; i++ {
		p.Update(frameTime, m)
	}

	assert.Equal(t, spawnX, p.x)
	assert.Equal(t, standingY, p.y)
	assert.EqualValues(t, 0, p.velocityX)
	assert.EqualValues(t, 0, p.velocityY)
	assert.True(t, p.onGround)
}

func TestFreeFallLandsExactlyOnFloor(t *testing.T) {
	m := NewTestMap()

	cases := []struct {
		name    string
		startY  units.Game
		elapsed units.MS
	}{
		{"small_steps", 250, 10},
		{"large_overshooting_step", standingY - 1, 80},
		{"max_frame_steps", 100, 83},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer(nil, common.NewRegistry(), spawnX, c.startY)
			for i := 0; i < maxStepped && !p.onGround; i++ {
				p.Update(c.elapsed, m)
			}
			require.True(t, p.onGround)
			assert.Equal(t, standingY, p.y)
			assert.EqualValues(t, 0, p.velocityY)
		})
	}
}

func TestJumpImpulse(t *testing.T) {
	m := NewTestMap()
	p := newGroundedPlayer(t, m, spawnX)

	p.StartJump()
	assert.Equal(t, -jumpSpeed, p.velocityY)

	p.Update(frameTime, m)
	assert.False(t, p.onGround)
	assert.Less(t, p.y, standingY)
}

func TestJumpWhileAirborneHasNoImpulse(t *testing.T) {
	m := NewTestMap()
	p := NewPlayer(nil, common.NewRegistry(), spawnX, 250)
	p.Update(frameTime, m)
	require.False(t, p.onGround)

	before := p.velocityY
	p.StartJump()
	assert.Equal(t, before, p.velocityY)
}

func TestHeldJumpRisesHigherThanReleasedJump(t *testing.T) {
	m := NewTestMap()

	peak := func(holdFor units.MS) units.Game {
		p := newGroundedPlayer(t, m, spawnX)
		p.StartJump()
		minY := p.y
		var elapsed units.MS
		for i := 0; i < maxStepped; i++ {
			if elapsed >= holdFor && p.jumpActive {
				p.StopJump()
			}
			p.Update(frameTime, m)
			elapsed += frameTime
			minY = min(minY, p.y)
			if p.onGround {
				break
			}
		}
		return minY
	}

	heldPeak := peak(100000)
	releasedPeak := peak(100)

	assert.Less(t, heldPeak, releasedPeak)
}

func TestWalkIntoWallSnapsToBoundary(t *testing.T) {
	m := NewTestMap()
	p := newGroundedPlayer(t, m, spawnX)

	p.StartMovingRight()
	for i := 0; i < 600; i++ {
		p.Update(15, m)
		// never overshoots into the wall tile
		require.LessOrEqual(t, p.x, wallSnapX)
	}

	assert.Equal(t, wallSnapX, p.x)
	assert.EqualValues(t, 0, p.velocityX)
	assert.True(t, p.onGround)
}

func TestFrictionStopsWithoutOvershoot(t *testing.T) {
	m := NewTestMap()
	p := newGroundedPlayer(t, m, spawnX)

	p.StartMovingRight()
	for i := 0; i < 20; i++ {
		p.Update(frameTime, m)
	}
	require.Positive(t, p.velocityX)

	p.StopMoving()
	for i := 0; i < maxStepped && p.velocityX != 0; i++ {
		p.Update(frameTime, m)
		require.GreaterOrEqual(t, p.velocityX, units.Velocity(0))
	}
	assert.EqualValues(t, 0, p.velocityX)
}

func TestTakeDamage(t *testing.T) {
	m := NewTestMap()

	t.Run("invincibility_window_gates_repeats", func(t *testing.T) {
		reg := common.NewRegistry()
		p := NewPlayer(nil, reg, spawnX, standingY)
		p.Update(frameTime, m)

		p.TakeDamage(1)
		assert.Equal(t, playerMaxHealth-1, p.Health())

		reg.Tick(100)
		p.TakeDamage(1)
		assert.Equal(t, playerMaxHealth-1, p.Health())

		reg.Tick(invincibleTime)
		p.TakeDamage(1)
		assert.Equal(t, playerMaxHealth-2, p.Health())
	})

	t.Run("knockback_hop_from_rest", func(t *testing.T) {
		reg := common.NewRegistry()
		p := NewPlayer(nil, reg, spawnX, standingY)
		p.Update(frameTime, m)
		require.EqualValues(t, 0, p.velocityY)

		p.TakeDamage(1)
		assert.Equal(t, units.Velocity(-shortJumpSpeed), p.velocityY)
	})

	t.Run("knockback_never_slows_a_faster_ascent", func(t *testing.T) {
		reg := common.NewRegistry()
		p := NewPlayer(nil, reg, spawnX, standingY)
		p.velocityY = -jumpSpeed

		p.TakeDamage(1)
		assert.Equal(t, -jumpSpeed, p.velocityY)
	})
}

func TestInvincibilityFlicker(t *testing.T) {
	reg := common.NewRegistry()
	p := NewPlayer(nil, reg, spawnX, standingY)

	// expired timer: always visible
	assert.True(t, p.spriteVisible())

	p.TakeDamage(1)
	assert.False(t, p.spriteVisible()) // window 0 hides

	reg.Tick(invincibleFlashTime)
	assert.True(t, p.spriteVisible()) // window 1 shows

	reg.Tick(invincibleFlashTime)
	assert.False(t, p.spriteVisible()) // window 2 hides

	reg.Tick(invincibleTime)
	assert.True(t, p.spriteVisible())
	reg.Tick(invincibleFlashTime)
	assert.True(t, p.spriteVisible())
}

func TestSpriteStateDerivation(t *testing.T) {
	cases := []struct {
		name  string
		setup func(p *Player)
		want  spriteState
	}{
		{
			name:  "standing",
			setup: func(p *Player) { p.onGround = true },
			want:  spriteState{motion: standing, horizontal: facingLeft, vertical: facingHorizontal},
		},
		{
			name: "walking",
			setup: func(p *Player) {
				p.onGround = true
				p.StartMovingRight()
			},
			want: spriteState{motion: walking, horizontal: facingRight, vertical: facingHorizontal},
		},
		{
			name: "jumping_moving_up",
			setup: func(p *Player) {
				p.velocityY = -0.1
				p.LookUp()
			},
			want: spriteState{motion: jumping, horizontal: facingLeft, vertical: facingUp},
		},
		{
			name:  "falling_moving_down",
			setup: func(p *Player) { p.velocityY = 0.1 },
			want:  spriteState{motion: falling, horizontal: facingLeft, vertical: facingHorizontal},
		},
		{
			name: "interacting_looking_down_on_ground",
			setup: func(p *Player) {
				p.onGround = true
				p.LookDown()
			},
			want: spriteState{motion: interacting, horizontal: facingLeft, vertical: facingDown},
		},
		{
			name: "look_down_airborne_is_not_interacting",
			setup: func(p *Player) {
				p.velocityY = 0.1
				p.LookDown()
			},
			want: spriteState{motion: falling, horizontal: facingLeft, vertical: facingDown},
		},
		{
			name: "walking_intent_cancels_interacting",
			setup: func(p *Player) {
				p.onGround = true
				p.LookDown()
				p.StartMovingLeft()
			},
			want: spriteState{motion: walking, horizontal: facingLeft, vertical: facingDown},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(t, 0, 0)
			c.setup(p)
			assert.Equal(t, c.want, p.spriteState())
		})
	}
}

func TestAllSpriteStatesCoversCrossProduct(t *testing.T) {
	states := allSpriteStates()
	require.Len(t, states,
		int(numMotionTypes)*int(numHorizontalFacings)*int(numVerticalFacings))

	seen := make(map[spriteState]struct{}, len(states))
	for _, s := range states {
		seen[s] = struct{}{}
	}
	assert.Len(t, seen, len(states))
}

func TestDamageRectangle(t *testing.T) {
	p := newTestPlayer(t, 100, 200)
	r := p.DamageRectangle()
	assert.Equal(t, units.Game(106), r.Left)
	assert.Equal(t, units.Game(202), r.Top)
	assert.Equal(t, collisionX.Width, r.Width)
	assert.Equal(t, collisionY.Height, r.Height)
}
