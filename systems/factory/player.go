package factory

import (
	"log"

	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/shared/timing"
	"github.com/automoto/danmaku/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the avatar for a player slot at the spawn point of its
// field. A player without a field is logged and cannot fire.
func CreatePlayer(ecs *ecs.ECS, index int, field *donburi.Entry) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	data := components.PlayerData{
		Index:          index,
		Lives:          cfg.Player.MaxLives,
		NormalSpeed:    cfg.Player.NormalSpeed,
		FocusSpeed:     cfg.Player.FocusSpeed,
		FireRate:       cfg.Player.FireRate,
		ChargeRate:     cfg.Player.ChargeRate,
		CapacityRegen:  cfg.Player.ChargeCapacityRegen,
		ChargeCapacity: cfg.Player.StartingCapacity,
		InvulnTimer:    timing.NewFrameCounter(cfg.Player.DeathInvulnFrames),
		FlashTimer:     timing.NewFrameCounter(cfg.Player.InvulnFlashFrames),
	}

	if field == nil || !field.Valid() {
		log.Printf("[player] %d: no field assigned, firing disabled", index)
	} else {
		f := components.Field.Get(field)
		f.Player = player
		data.Field = field
		data.Position = SpawnPosition(f)
		data.FireSink = playerShot(ecs, player, components.NewLinearController(cfg.Player.ShotVelocity))
	}
	components.Player.SetValue(player, data)
	components.PlayerInput.SetValue(player, components.PlayerInputData{PlayerIndex: index})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	SyncObject(ecs, obj, data.Position, cfg.Player.GrazeRadius)

	return player
}

// SpawnPosition returns the world position players start a round at.
func SpawnPosition(f *components.FieldData) dmath.Vec2 {
	return f.WorldPoint(dmath.Vec2{X: cfg.Player.Spawn.X, Y: cfg.Player.Spawn.Y}, components.View)
}

// playerShot fires a pair of shots up the player's own field, all driven by
// one shared controller.
func playerShot(ecs *ecs.ECS, player *donburi.Entry, controller *components.ControllerData) components.Trigger {
	return components.TriggerFunc(func() {
		p := components.Player.Get(player)
		if p.Field == nil || !p.Field.Valid() {
			return
		}
		f := components.Field.Get(p.Field)
		for _, side := range []float64{-1, 1} {
			offset := gamemath.Rotate(dmath.Vec2{X: side * cfg.Player.ShotSpread}, f.Rotation)
			pos := p.Position.Add(offset)
			e, err := GetProjectile(ecs, cfg.Player.ShotType, pos, f.Rotation, p.Field)
			if err != nil {
				log.Printf("[player] %d: %v", p.Index, err)
				return
			}
			shot := components.Projectile.Get(e)
			shot.Owner = p.Index
			shot.AddController(controller)
		}
	})
}
