// Package units defines the unit spaces the game simulates in: game units
// for continuous quantities, tiles for the level grid, and pixels for the
// screen. The conversion factors are fixed for the whole program.
package units

import "math"

// Game is the floating-point position unit. One game unit is one pixel at
// base scale; one tile is TileSize game units.
type Game float64

// Tile indexes the level grid.
type Tile int

// Pixel is a screen coordinate at base scale.
type Pixel int

// MS is elapsed game time in milliseconds.
type MS int64

// Velocity is game units per millisecond.
type Velocity float64

// Acceleration is game units per millisecond squared.
type Acceleration float64

// AngularVelocity is degrees per millisecond.
type AngularVelocity float64

// Degrees is an angle in degrees.
type Degrees float64

// HP counts hit points.
type HP int

// Frame indexes a sprite-sheet frame.
type Frame int

// FPS is an animation frame rate.
type FPS int

const (
	// TileSize is the edge length of one tile in game units.
	TileSize Game = 32
	HalfTile Game = TileSize / 2
)

func TileToGame(t Tile) Game { return Game(t) * TileSize }

// GameToTile truncates toward zero, so a coordinate exactly on a tile
// boundary maps to the tile that starts there.
func GameToTile(g Game) Tile { return Tile(g / TileSize) }

func TileToPixel(t Tile) Pixel { return Pixel(TileToGame(t)) }

func GameToPixel(g Game) Pixel { return Pixel(math.Round(float64(g))) }

func DegreesToRadians(d Degrees) float64 { return float64(d) * math.Pi / 180 }

// Over integrates an acceleration over t milliseconds.
func (a Acceleration) Over(t MS) Velocity { return Velocity(float64(a) * float64(t)) }

// Over is the distance covered at velocity v over t milliseconds.
func (v Velocity) Over(t MS) Game { return Game(float64(v) * float64(t)) }

// Over is the angle swept at angular velocity av over t milliseconds.
func (av AngularVelocity) Over(t MS) Degrees { return Degrees(float64(av) * float64(t)) }
