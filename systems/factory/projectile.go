package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrUnknownBulletType is returned for a bullet type missing from config.Bullets.
var ErrUnknownBulletType = errors.New("unknown bullet type")

func getOrCreatePool(ecs *ecs.ECS) *components.ProjectilePoolData {
	if _, ok := components.ProjectilePool.First(ecs.World); !ok {
		archetypes.ProjectilePool.Spawn(ecs)
	}

	ent, _ := components.ProjectilePool.First(ecs.World)
	return components.ProjectilePool.Get(ent)
}

// PoolStats returns the number of projectiles ever created and currently free.
func PoolStats(ecs *ecs.ECS) (created, free int) {
	pool := getOrCreatePool(ecs)
	return pool.Created, len(pool.Free)
}

// GetProjectile activates a projectile of bulletType at a world position,
// reusing a deactivated one when the pool has any.
func GetProjectile(ecs *ecs.ECS, bulletType string, position dmath.Vec2, rotation float64, field *donburi.Entry) (*donburi.Entry, error) {
	bt, ok := cfg.Bullets.Types[bulletType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBulletType, bulletType)
	}

	pool := getOrCreatePool(ecs)
	var e *donburi.Entry
	for len(pool.Free) > 0 {
		last := len(pool.Free) - 1
		e = pool.Free[last]
		pool.Free[last] = nil
		pool.Free = pool.Free[:last]
		if e.Valid() {
			break
		}
		e = nil
	}
	if e == nil {
		e = newProjectile(ecs)
		pool.Created++
	}

	p := components.Projectile.Get(e)
	p.Reset()
	p.Type = bulletType
	p.Radius = bt.Radius
	p.Position = position
	p.SetRotation(rotation)
	p.Field = field
	p.Active = true

	SyncObject(ecs, components.Object.Get(e).Object, position, bt.Radius)
	return e, nil
}

func newProjectile(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Projectile.Spawn(ecs)
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvProjectile)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Projectile.SetValue(e, components.ProjectileData{Owner: -1})
	return e
}

// DeactivateProjectile returns an active projectile to the pool.
func DeactivateProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	p := components.Projectile.Get(e)
	if !p.Active {
		return
	}
	p.Reset()
	removeObject(components.Object.Get(e).Object)

	pool := getOrCreatePool(ecs)
	pool.Free = append(pool.Free, e)
}

// ActiveProjectiles collects every active projectile.
func ActiveProjectiles(ecs *ecs.ECS) []*donburi.Entry {
	var active []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Active {
			active = append(active, e)
		}
	})
	return active
}

// DeactivateAll returns every active projectile to the pool and reports how
// many were deactivated.
func DeactivateAll(ecs *ecs.ECS) int {
	active := ActiveProjectiles(ecs)
	for _, e := range active {
		DeactivateProjectile(ecs, e)
	}
	return len(active)
}
