package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCancelAreas deactivates hostile bullets inside each cancel area and
// removes areas whose time ran out.
func UpdateCancelAreas(ecs *ecs.ECS) {
	registry := factory.GetOrCreateRegistry(ecs)
	if len(registry.CancelAreas) == 0 {
		return
	}
	dt := DeltaTime(ecs)
	active := factory.ActiveProjectiles(ecs)

	var expired []*donburi.Entry
	for _, entry := range registry.CancelAreas {
		if entry == nil || !entry.Valid() {
			continue
		}
		area := components.CancelArea.Get(entry)
		for _, pe := range active {
			p := components.Projectile.Get(pe)
			if !p.Active || p.Owner >= 0 || p.Field != area.Field {
				continue
			}
			if p.Position.Distance(area.Center) <= area.Radius {
				factory.DeactivateProjectile(ecs, pe)
				area.Canceled++
			}
		}
		area.Remaining -= dt
		if area.Remaining <= 0 {
			expired = append(expired, entry)
		}
	}

	for _, entry := range expired {
		ecs.World.Remove(entry.Entity())
	}
	registry.Compact()
}

// ClearCancelAreas removes every cancel area.
func ClearCancelAreas(ecs *ecs.ECS) {
	registry := factory.GetOrCreateRegistry(ecs)
	for _, entry := range registry.CancelAreas {
		if entry != nil && entry.Valid() {
			ecs.World.Remove(entry.Entity())
		}
	}
	registry.Compact()
}
