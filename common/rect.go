package common

import "github.com/milk9111/cavern/units"

// Rectangle is an axis-aligned box in game units. It is a pure value type;
// collision code builds and discards these freely.
type Rectangle struct {
	Left, Top     units.Game
	Width, Height units.Game
}

func NewRectangle(left, top, width, height units.Game) Rectangle {
	return Rectangle{Left: left, Top: top, Width: width, Height: height}
}

func (r Rectangle) Right() units.Game  { return r.Left + r.Width }
func (r Rectangle) Bottom() units.Game { return r.Top + r.Height }

func (r Rectangle) CenterX() units.Game { return r.Left + r.Width/2 }
func (r Rectangle) CenterY() units.Game { return r.Top + r.Height/2 }

// CollidesWith reports whether the rectangles overlap with nonzero area.
// Edge-touching rectangles do not collide.
func (r Rectangle) CollidesWith(other Rectangle) bool {
	return r.Left < other.Right() &&
		r.Right() > other.Left &&
		r.Top < other.Bottom() &&
		r.Bottom() > other.Top
}
