package gfx

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cavern/units"
)

// Sprite is the drawable surface actors render through.
type Sprite interface {
	Update(elapsed units.MS)
	Draw(screen *ebiten.Image, x, y units.Game)
}

type staticSprite struct {
	sheet            *ebiten.Image
	sourceX, sourceY units.Pixel
	width, height    units.Pixel
}

// NewSprite creates a sprite drawing a fixed frame from the sheet at path.
// A nil graphics yields a sprite that draws nothing, which keeps actors
// constructible in headless tests.
func NewSprite(graphics *Graphics, path string, sourceX, sourceY, width, height units.Pixel) Sprite {
	s := &staticSprite{sourceX: sourceX, sourceY: sourceY, width: width, height: height}
	if graphics != nil {
		s.sheet = graphics.Sheet(path)
	}
	return s
}

func (s *staticSprite) Update(units.MS) {}

func (s *staticSprite) Draw(screen *ebiten.Image, x, y units.Game) {
	s.drawFrame(screen, x, y, 0)
}

func (s *staticSprite) drawFrame(screen *ebiten.Image, x, y units.Game, frame units.Frame) {
	if s.sheet == nil {
		return
	}
	srcX := int(s.sourceX) + int(frame)*int(s.width)
	src := image.Rect(srcX, int(s.sourceY), srcX+int(s.width), int(s.sourceY)+int(s.height))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(units.GameToPixel(x)), float64(units.GameToPixel(y)))
	screen.DrawImage(s.sheet.SubImage(src).(*ebiten.Image), op)
}

type animatedSprite struct {
	staticSprite

	frameDuration units.MS
	numFrames     units.Frame

	currentFrame units.Frame
	sinceAdvance units.MS
}

// NewAnimatedSprite creates a sprite cycling numFrames frames laid out
// left-to-right from the source offset, advancing at fps.
func NewAnimatedSprite(
	graphics *Graphics,
	path string,
	sourceX, sourceY, width, height units.Pixel,
	fps units.FPS,
	numFrames units.Frame,
) Sprite {
	s := &animatedSprite{
		staticSprite:  staticSprite{sourceX: sourceX, sourceY: sourceY, width: width, height: height},
		frameDuration: units.MS(1000 / int64(fps)),
		numFrames:     numFrames,
	}
	if graphics != nil {
		s.sheet = graphics.Sheet(path)
	}
	return s
}

func (s *animatedSprite) Update(elapsed units.MS) {
	s.sinceAdvance += elapsed
	for s.sinceAdvance > s.frameDuration {
		s.sinceAdvance -= s.frameDuration
		s.currentFrame = (s.currentFrame + 1) % s.numFrames
	}
}

func (s *animatedSprite) Draw(screen *ebiten.Image, x, y units.Game) {
	s.drawFrame(screen, x, y, s.currentFrame)
}
