package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/units"
)

const (
	healthBarX      units.Game = units.HalfTile
	healthBarY      units.Game = units.HalfTile
	healthBarWidth  units.Game = 4 * units.TileSize
	healthBarHeight units.Game = 8

	// fraction of the remaining gap the displayed fill closes per ms
	healthDrainRate = 0.008
)

// Health tracks hit points and draws the HUD bar. Damage lands on the
// numeric value immediately; the bar fill drains toward it smoothly.
type Health struct {
	current, maximum units.HP
	displayed        float64

	barImg  *ebiten.Image
	fillImg *ebiten.Image
}

func NewHealth(maximum units.HP) *Health {
	return &Health{
		current:   maximum,
		maximum:   maximum,
		displayed: float64(maximum),
	}
}

func (h *Health) TakeDamage(damage units.HP) {
	h.current = max(0, h.current-damage)
}

func (h *Health) Current() units.HP { return h.current }

func (h *Health) Update(elapsed units.MS) {
	t := min(1.0, healthDrainRate*float64(elapsed))
	h.displayed = common.Lerp(h.displayed, float64(h.current), t)
}

func (h *Health) Draw(screen *ebiten.Image) {
	if h.barImg == nil {
		h.barImg = ebiten.NewImage(int(healthBarWidth), int(healthBarHeight))
		h.barImg.Fill(colornames.Darkred)
		h.fillImg = ebiten.NewImage(1, int(healthBarHeight)-2)
		h.fillImg.Fill(colornames.Orangered)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(units.GameToPixel(healthBarX)), float64(units.GameToPixel(healthBarY)))
	screen.DrawImage(h.barImg, op)

	fill := float64(healthBarWidth-2) * h.displayed / float64(h.maximum)
	if fill <= 0 {
		return
	}
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(fill, 1)
	op.GeoM.Translate(float64(units.GameToPixel(healthBarX+1)), float64(units.GameToPixel(healthBarY+1)))
	screen.DrawImage(h.fillImg, op)
}
