package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrMissingHook is returned when a pattern lacks the hook its kind runs.
	ErrMissingHook = errors.New("attack pattern is missing a required hook")
	// ErrMissingField is returned when a pattern or projectile has no field.
	ErrMissingField = errors.New("missing target field")
)

// PatternConfig describes an attack pattern to create.
type PatternConfig struct {
	Name     string
	Kind     components.PatternKind
	Field    *donburi.Entry
	Interval int // frames between emissions, timed patterns only
	Hooks    components.PatternHooks

	// Bullet types the hooks fire, checked against config.Bullets
	BulletTypes []string
}

// Validate checks that the hooks required by the pattern kind are present
// and that every bullet type it fires is configured.
func (pc PatternConfig) Validate() error {
	if pc.Field == nil || !pc.Field.Valid() || !pc.Field.HasComponent(components.Field) {
		return fmt.Errorf("pattern %q: %w", pc.Name, ErrMissingField)
	}
	for _, bulletType := range pc.BulletTypes {
		if _, ok := cfg.Bullets.Types[bulletType]; !ok {
			return fmt.Errorf("pattern %q: %w: %q", pc.Name, ErrUnknownBulletType, bulletType)
		}
	}
	switch pc.Kind {
	case components.PatternTimed, components.PatternOneShot:
		if pc.Hooks.Emit == nil {
			return fmt.Errorf("%s pattern %q needs Emit: %w", pc.Kind, pc.Name, ErrMissingHook)
		}
	case components.PatternCustom:
		if pc.Hooks.MainLoop == nil {
			return fmt.Errorf("%s pattern %q needs MainLoop: %w", pc.Kind, pc.Name, ErrMissingHook)
		}
	default:
		return fmt.Errorf("pattern %q has unknown kind %d: %w", pc.Name, pc.Kind, ErrMissingHook)
	}
	return nil
}

// CreateAttackPattern validates pc, spawns the pattern idle and registers it
// with the scheduler. Invalid patterns are not created.
func CreateAttackPattern(ecs *ecs.ECS, pc PatternConfig) (*donburi.Entry, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	pattern := archetypes.Pattern.Spawn(ecs)
	data := components.AttackPatternData{
		Name:  pc.Name,
		Kind:  pc.Kind,
		Hooks: pc.Hooks,
		Field: pc.Field,
	}
	data.Interval.SetMax(pc.Interval)
	components.AttackPattern.SetValue(pattern, data)

	GetOrCreateRegistry(ecs).RegisterPattern(pattern)
	return pattern, nil
}
