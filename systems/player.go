package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayers applies input to every avatar: focus, movement clamped to
// the field, charge and fire, and invincibility.
func UpdatePlayers(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)

	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		players = append(players, entry)
	})

	for _, entry := range players {
		player := components.Player.Get(entry)
		if player.Paused {
			continue
		}
		input := components.PlayerInput.Get(entry)
		updatePlayer(player, input, dt)
		factory.SyncObject(ecs, components.Object.Get(entry).Object, player.Position, cfg.Player.GrazeRadius)
	}
}

func updatePlayer(player *components.PlayerData, input *components.PlayerInputData, dt float64) {
	player.IsFocused = input.Action(cfg.ActionFocus).Pressed
	player.IsFiring = input.Action(cfg.ActionFire).Pressed

	var field *components.FieldData
	if player.Field != nil && player.Field.Valid() {
		field = components.Field.Get(player.Field)
	}

	h, v := MoveAxes(input)
	if field != nil && field.Rotation != 0 {
		dir := gamemath.Rotate(dmath.Vec2{X: h, Y: v}, field.Rotation)
		h, v = dir.X, dir.Y
	}
	player.Move(h, v, dt)
	if field != nil {
		keepInField(player, field)
	}

	player.SetCharging(input.Action(cfg.ActionCharge).Pressed)
	player.UpdateCharge(dt)
	player.UpdateInvincibility()
}

// keepInField clamps the avatar to its field and forbids movement into any
// wall it touches.
func keepInField(player *components.PlayerData, field *components.FieldData) {
	view := field.ViewPoint(player.Position)

	clampAxis := func(value float64, negative, positive dmath.Vec2) float64 {
		switch {
		case value <= 0:
			player.ForbidMovement(wallDirection(negative, field.Rotation))
			return 0
		case value >= 1:
			player.ForbidMovement(wallDirection(positive, field.Rotation))
			return 1
		}
		player.AllowMovement(wallDirection(negative, field.Rotation))
		player.AllowMovement(wallDirection(positive, field.Rotation))
		return value
	}

	view.X = clampAxis(view.X, dmath.Vec2{X: -1}, dmath.Vec2{X: 1})
	view.Y = clampAxis(view.Y, dmath.Vec2{Y: -1}, dmath.Vec2{Y: 1})
	player.Position = field.WorldPoint(view, components.View)
}

// wallDirection turns a view space wall normal into world axis signs.
func wallDirection(normal dmath.Vec2, rotation float64) dmath.Vec2 {
	d := gamemath.Rotate(normal, rotation)
	return dmath.Vec2{X: roundSign(d.X), Y: roundSign(d.Y)}
}

func roundSign(v float64) float64 {
	if v > 0.5 {
		return 1
	}
	if v < -0.5 {
		return -1
	}
	return 0
}
