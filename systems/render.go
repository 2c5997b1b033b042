package systems

import (
	"image/color"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// toScreen flips world coordinates (Y up) into screen pixels (Y down).
func toScreen(p dmath.Vec2) (float32, float32) {
	return float32(p.X), float32(float64(cfg.C.Height) - p.Y)
}

// DrawFields renders each field's background and border.
func DrawFields(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	components.Field.Each(ecs.World, func(entry *donburi.Entry) {
		f := components.Field.Get(entry)
		corners := [4]dmath.Vec2{
			f.WorldPoint(dmath.Vec2{X: 0, Y: 0}, components.View),
			f.WorldPoint(dmath.Vec2{X: 1, Y: 0}, components.View),
			f.WorldPoint(dmath.Vec2{X: 1, Y: 1}, components.View),
			f.WorldPoint(dmath.Vec2{X: 0, Y: 1}, components.View),
		}

		if f.Rotation == 0 {
			x, y := toScreen(corners[3])
			vector.FillRect(screen, x, y, float32(f.Size.X), float32(f.Size.Y), cfg.UI.FieldColor, false)
		}
		for i := range corners {
			x0, y0 := toScreen(corners[i])
			x1, y1 := toScreen(corners[(i+1)%len(corners)])
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.UI.BorderColor, true)
		}
	})
}

// DrawProjectiles renders every active projectile as a filled circle.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Projectile.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Active {
			return
		}
		clr := cfg.Bullets.Types[p.Type].Color
		if p.Owner >= 0 {
			clr = cfg.UI.PlayerColors[p.Owner%len(cfg.UI.PlayerColors)]
		}
		x, y := toScreen(p.Position)
		vector.FillCircle(screen, x, y, float32(p.Radius), clr, true)
	})
}

// DrawPlayers renders each avatar with its graze ring and hitbox.
// Invincible avatars blink with the flash timer.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		if p.Flash {
			return
		}
		clr := cfg.UI.PlayerColors[p.Index%len(cfg.UI.PlayerColors)]
		x, y := toScreen(p.Position)
		vector.FillCircle(screen, x, y, 7, clr, true)
		if p.IsFocused || cfg.Debug.ShowHitboxes {
			vector.StrokeCircle(screen, x, y, float32(cfg.Player.GrazeRadius), 1, clr, true)
			vector.FillCircle(screen, x, y, float32(cfg.Player.HitboxRadius), color.White, true)
		}
	})
}

// DrawCancelAreas renders active bullet cancel circles.
func DrawCancelAreas(ecs *ecs.ECS, screen *ebiten.Image) {
	components.CancelArea.Each(ecs.World, func(entry *donburi.Entry) {
		a := components.CancelArea.Get(entry)
		x, y := toScreen(a.Center)
		vector.FillCircle(screen, x, y, float32(a.Radius), cfg.UI.CancelColor, true)
	})
}

// DrawClosure renders the between-rounds shutters closing over each field.
func DrawClosure(ecs *ecs.ECS, screen *ebiten.Image) {
	round, ok := GetRound(ecs)
	if !ok || round.Closure <= 0 {
		return
	}
	components.Field.Each(ecs.World, func(entry *donburi.Entry) {
		f := components.Field.Get(entry)
		half := float32(f.Size.Y * round.Closure / 2)
		x, top := toScreen(f.WorldPoint(dmath.Vec2{X: 0, Y: 1}, components.View))
		_, bottom := toScreen(f.WorldPoint(dmath.Vec2{X: 0, Y: 0}, components.View))
		w := float32(f.Size.X)
		vector.FillRect(screen, x, top, w, half, cfg.UI.ClosureColor, false)
		vector.FillRect(screen, x, bottom-half, w, half, cfg.UI.ClosureColor, false)
	})
}
