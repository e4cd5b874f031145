package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame control snapshot. ebiten tracks key state across
// frames itself, so this is a thin predicate layer the frame loop reads
// once per tick.
type Input struct{}

func NewInput() *Input { return &Input{} }

func (i *Input) IsKeyHeld(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

// WasKeyPressed reports a key that went down this frame.
func (i *Input) WasKeyPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// WasKeyReleased reports a key that went up this frame.
func (i *Input) WasKeyReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }
