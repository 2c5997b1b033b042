package systems

import (
	"log"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions checks hostile projectiles against every player: a bullet
// inside the hitbox costs a life, one inside the graze radius counts a graze.
func UpdateCollisions(ecs *ecs.ECS) {
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		players = append(players, entry)
	})

	for _, entry := range players {
		checkPlayerCollisions(ecs, entry)
	}
}

func checkPlayerCollisions(ecs *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.Field == nil || player.Paused {
		return
	}

	obj := components.Object.Get(entry).Object
	check := obj.Check(0, 0, tags.ResolvProjectile)
	if check == nil {
		return
	}

	for _, o := range check.ObjectsByTags(tags.ResolvProjectile) {
		projEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !projEntry.Valid() {
			continue
		}
		p := components.Projectile.Get(projEntry)
		// Player shots never hurt; hostile bullets only hit in their own field
		if !p.Active || p.Owner >= 0 || p.Field != player.Field {
			continue
		}

		dist := p.Position.Distance(player.Position)
		if dist <= p.Radius+cfg.Player.HitboxRadius {
			if hitPlayer(ecs, player) {
				return
			}
			continue
		}
		if !p.Grazed && dist <= p.Radius+cfg.Player.GrazeRadius {
			p.Grazed = true
			player.Graze()
		}
	}
}

// hitPlayer applies a hit and clears the bullets around the player. It
// reports whether a life was lost.
func hitPlayer(ecs *ecs.ECS, player *components.PlayerData) bool {
	if !player.Hit() {
		return false
	}
	log.Printf("[player] %d: hit, %d lives left", player.Index, player.Lives)
	factory.CreateCancelArea(ecs, player.Field, player.Position, cfg.Player.DeathCancelRadius, cfg.Player.DeathCancelDuration)
	return true
}
