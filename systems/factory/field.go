package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateField(ecs *ecs.ECS, index int, center, size dmath.Vec2) *donburi.Entry {
	field := archetypes.Field.Spawn(ecs)
	components.Field.SetValue(field, components.FieldData{
		Index:  index,
		Center: center,
		Size:   size,
	})
	return field
}

// CreateFields lays out the two versus fields side by side, centered on the
// screen below the HUD strip, each targeting the other.
func CreateFields(ecs *ecs.ECS) [2]*donburi.Entry {
	var fields [2]*donburi.Entry

	total := 2*cfg.Field.Width + cfg.Field.Gap
	left := (float64(cfg.C.Width) - total) / 2
	centerY := float64(cfg.C.Height) - cfg.Field.Top - cfg.Field.Height/2
	size := dmath.Vec2{X: cfg.Field.Width, Y: cfg.Field.Height}

	for i := range fields {
		x := left + cfg.Field.Width/2 + float64(i)*(cfg.Field.Width+cfg.Field.Gap)
		fields[i] = CreateField(ecs, i, dmath.Vec2{X: x, Y: centerY}, size)
	}

	components.Field.Get(fields[0]).Target = fields[1]
	components.Field.Get(fields[1]).Target = fields[0]
	return fields
}
