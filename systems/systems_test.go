package systems

import (
	"testing"

	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60.0

func newTestWorld(t *testing.T) (*ecs.ECS, [2]*donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Field.CellSize, cfg.Field.CellSize)
	fields := factory.CreateFields(e)
	SetDeltaTime(e, testDT)
	return e, fields
}
