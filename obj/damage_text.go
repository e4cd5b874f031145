package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/units"
)

const (
	damageTextVelocity units.Velocity = -units.Velocity(units.HalfTile) / 250
	damageTextDuration units.MS       = 2000
)

var damageFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// DamageText is the floating number shown when the player takes damage. It
// rises half a tile and disappears when its timer expires.
type DamageText struct {
	damage  units.HP
	offsetY units.Game
	timer   *common.Timer
}

func NewDamageText(timers *common.Registry) *DamageText {
	return &DamageText{timer: timers.NewTimer(damageTextDuration)}
}

// SetDamage restarts the floating number with a fresh amount.
func (d *DamageText) SetDamage(damage units.HP) {
	d.damage = damage
	d.offsetY = 0
	d.timer.Reset()
}

func (d *DamageText) Update(elapsed units.MS) {
	if d.timer.Expired() {
		return
	}
	d.offsetY = max(-units.TileToGame(1), d.offsetY+damageTextVelocity.Over(elapsed))
}

// Draw renders the number centered on (centerX, centerY+offset).
func (d *DamageText) Draw(screen *ebiten.Image, centerX, centerY units.Game) {
	if d.timer.Expired() {
		return
	}

	label := fmt.Sprintf("-%d", d.damage)
	w, h := text.Measure(label, damageFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(
		float64(units.GameToPixel(centerX))-w/2,
		float64(units.GameToPixel(centerY+d.offsetY))-h/2,
	)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, label, damageFace, op)
}
