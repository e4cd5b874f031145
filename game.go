package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/gfx"
	"github.com/milk9111/cavern/levels"
	"github.com/milk9111/cavern/obj"
	"github.com/milk9111/cavern/units"
)

const (
	screenWidthTiles  units.Tile = 20
	screenHeightTiles units.Tile = 15

	// base resolution in pixels, screenWidthTiles x screenHeightTiles tiles
	baseWidth  = 640
	baseHeight = 480

	// largest single integration step; stalled frames clamp to this so a hitch
	// can't tunnel actors through tiles
	maxFrameTime units.MS = 5 * 1000 / 60
)

type Game struct {
	graphics *gfx.Graphics
	timers   *common.Registry
	input    *obj.Input

	tileMap *obj.Map
	player  *obj.Player
	bat     *obj.FlyingEnemy

	levelPath string
	watcher   *obj.Watcher

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	lastUpdate time.Time
}

func NewGame(levelPath string) *Game {
	g := &Game{
		graphics:  gfx.New(),
		timers:    common.NewRegistry(),
		input:     obj.NewInput(),
		levelPath: levelPath,
	}
	g.pauseUI = NewPauseUI(g)

	g.tileMap = loadOrDefaultMap(levelPath)
	spawnX, spawnY := g.tileMap.SpawnPosition()
	g.player = obj.NewPlayer(g.graphics, g.timers, spawnX, spawnY)
	g.bat = obj.NewFlyingEnemy(
		g.graphics,
		units.TileToGame(7),
		units.TileToGame(screenHeightTiles/2+1),
	)

	if levelPath != "" {
		watcher, err := obj.NewWatcher(filepath.Dir(levelPath))
		if err != nil {
			log.Printf("level watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g
}

func loadOrDefaultMap(levelPath string) *obj.Map {
	if levelPath != "" {
		m, err := obj.LoadMap(levelPath)
		if err == nil {
			return m
		}
		log.Printf("falling back to embedded level: %v", err)
	}
	m, err := obj.ParseMap(levels.Cave)
	if err != nil {
		log.Printf("embedded level broken, using test map: %v", err)
		return obj.NewTestMap()
	}
	return m
}

func (g *Game) Update() error {
	if g.quit {
		if g.watcher != nil {
			if err := g.watcher.Close(); err != nil {
				log.Printf("level watch close: %v", err)
			}
			g.watcher = nil
		}
		return ebiten.Termination
	}

	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	elapsed := min(units.MS(now.Sub(g.lastUpdate).Milliseconds()), maxFrameTime)
	g.lastUpdate = now

	if g.input.WasKeyPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainLevelReloads()
	g.applyIntents()

	// One registry tick per frame keeps every live timer on the same clock.
	g.timers.Tick(elapsed)

	g.player.Update(elapsed, g.tileMap)
	g.bat.Update(elapsed, g.player.CenterX())

	if g.bat.DamageRectangle().CollidesWith(g.player.DamageRectangle()) {
		g.player.TakeDamage(g.bat.ContactDamage())
	}
	return nil
}

// applyIntents maps the raw key snapshot to player intents. Opposing held
// directions cancel each other.
func (g *Game) applyIntents() {
	left := g.input.IsKeyHeld(ebiten.KeyLeft) || g.input.IsKeyHeld(ebiten.KeyA)
	right := g.input.IsKeyHeld(ebiten.KeyRight) || g.input.IsKeyHeld(ebiten.KeyD)
	switch {
	case left && right:
		g.player.StopMoving()
	case left:
		g.player.StartMovingLeft()
	case right:
		g.player.StartMovingRight()
	default:
		g.player.StopMoving()
	}

	up := g.input.IsKeyHeld(ebiten.KeyUp) || g.input.IsKeyHeld(ebiten.KeyW)
	down := g.input.IsKeyHeld(ebiten.KeyDown) || g.input.IsKeyHeld(ebiten.KeyS)
	switch {
	case up && down:
		g.player.LookHorizontal()
	case up:
		g.player.LookUp()
	case down:
		g.player.LookDown()
	default:
		g.player.LookHorizontal()
	}

	if g.input.WasKeyPressed(ebiten.KeyZ) || g.input.WasKeyPressed(ebiten.KeySpace) {
		g.player.StartJump()
	} else if g.input.WasKeyReleased(ebiten.KeyZ) || g.input.WasKeyReleased(ebiten.KeySpace) {
		g.player.StopJump()
	}
}

func (g *Game) drainLevelReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			// the watcher covers the whole directory; only edits to the
			// loaded level matter
			if filepath.Clean(path) != filepath.Clean(g.levelPath) {
				continue
			}
			m, err := obj.LoadMap(g.levelPath)
			if err != nil {
				log.Printf("level reload failed: %v", err)
				continue
			}
			g.tileMap = m
			log.Printf("level reloaded: %s", path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("level watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	g.tileMap.Draw(screen)
	g.bat.Draw(screen)
	g.player.Draw(screen)
	g.player.DrawHUD(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), 4, baseHeight-16)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
