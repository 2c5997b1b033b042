package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	hudMargin      = 6
	chargeBarWidth = 80
	chargeBarH     = 5
)

// DrawHUD renders the round timer, scores, lives and charge gauges.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	round, ok := GetRound(ecs)
	if !ok {
		return
	}
	face := fonts.HUD.Get()
	width := screen.Bounds().Dx()

	timer := RoundTimerText(round.Remaining)
	timerColor := cfg.UI.TextColor
	if round.TimerFlash {
		timerColor = cfg.UI.FlashColor
	}
	bounds := text.BoundString(face, timer)
	text.Draw(screen, timer, face, (width-bounds.Dx())/2, hudMargin+bounds.Dy(), timerColor)

	for i, slot := range round.Slots {
		if slot.Field == nil || !slot.Field.Valid() {
			continue
		}
		field := components.Field.Get(slot.Field)
		x, y := toScreen(field.WorldPoint(dmath.Vec2{X: 0, Y: 1}, components.View))
		lineY := int(y) - hudMargin

		label := fmt.Sprintf("P%d  %d", i+1, slot.Score)
		if field.Player != nil && field.Player.Valid() {
			player := components.Player.Get(field.Player)
			label += "  " + strings.Repeat("*", max(player.Lives, 0))
			drawChargeGauge(screen, player, x+float32(field.Size.X)-chargeBarWidth, float32(lineY-chargeBarH))
		}
		text.Draw(screen, label, face, int(x), lineY, cfg.UI.PlayerColors[i])
	}

	if round.Finished() {
		msg := fmt.Sprintf("PLAYER %d WINS", round.Winner+1)
		title := fonts.Title.Get()
		b := text.BoundString(title, msg)
		text.Draw(screen, msg, title, (width-b.Dx())/2, screen.Bounds().Dy()/2, cfg.UI.TextColor)
	} else if round.SuddenDeath {
		msg := "SUDDEN DEATH"
		b := text.BoundString(face, msg)
		text.Draw(screen, msg, face, (width-b.Dx())/2, 2*(hudMargin+b.Dy()), cfg.UI.FlashColor)
	}
}

// drawChargeGauge shows capacity behind the current charge level.
func drawChargeGauge(screen *ebiten.Image, player *components.PlayerData, x, y float32) {
	maxLevel := float32(player.MaxChargeLevel())
	vector.FillRect(screen, x, y, chargeBarWidth, chargeBarH, cfg.UI.FieldColor, false)
	vector.FillRect(screen, x, y, chargeBarWidth*float32(player.ChargeCapacity)/maxLevel, chargeBarH, cfg.UI.BorderColor, false)
	vector.FillRect(screen, x, y, chargeBarWidth*float32(player.ChargeLevel)/maxLevel, chargeBarH, cfg.UI.PlayerColors[player.Index%2], false)
}
