package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/patterns"
	"github.com/automoto/danmaku/systems"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VersusOptions selects who controls each player slot.
type VersusOptions struct {
	Bots          [2]bool
	BotDifficulty cfg.BotDifficulty
	Seed          int64
}

// VersusScene is the two-player match: one field per player, specials
// dropping into the opponent's field.
type VersusScene struct {
	ecs  *ecs.ECS
	opts VersusOptions
	once sync.Once
}

// NewVersusScene creates a versus scene. The world is built on first update.
func NewVersusScene(opts VersusOptions) *VersusScene {
	return &VersusScene{opts: opts}
}

func (vs *VersusScene) Update() {
	vs.once.Do(vs.configure)
	if vs.ecs == nil {
		return
	}
	systems.SetDeltaTime(vs.ecs, cfg.TargetDeltaTime())
	vs.ecs.Update()

	// Fire restarts a finished match
	if round, ok := systems.GetRound(vs.ecs); ok && round.Finished() && !round.Resetting() && restartPressed(vs.ecs) {
		systems.RestartMatch(vs.ecs, cfg.Round.WinningScore)
	}
}

// ECS returns the match world, nil until the first update.
func (vs *VersusScene) ECS() *ecs.ECS {
	return vs.ecs
}

func (vs *VersusScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *VersusScene) configure() {
	e, err := NewVersusWorld(vs.opts)
	if err != nil {
		log.Printf("[versus] could not build match: %v", err)
		return
	}
	vs.ecs = e
}

// NewVersusWorld builds the complete match ECS: systems in frame order,
// renderers, both fields with their players, every attack pattern and the
// round controller. Hosts drive it with SetDeltaTime and Update.
func NewVersusWorld(opts VersusOptions) (*ecs.ECS, error) {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateClock)
	if !opts.Bots[0] || !opts.Bots[1] {
		// Bot-only matches never touch input devices and run headless
		e.AddSystem(systems.UpdateInput)
	}
	e.AddSystem(systems.UpdateBots) // Must run after UpdateInput
	e.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and round reset checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayers))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTimedTriggers))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePatterns))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCancelAreas))

	// Round controller runs during its own reset transition
	e.AddSystem(systems.UpdateRound)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawFields)
	e.AddRenderer(cfg.Default, systems.DrawCancelAreas)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawPlayers)
	e.AddRenderer(cfg.Default, systems.DrawClosure)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Field.CellSize, cfg.Field.CellSize)
	systems.GetOrCreateClock(e)
	systems.GetOrCreatePause(e)

	fields := factory.CreateFields(e)
	rng := rand.New(rand.NewSource(opts.Seed))

	for slot, field := range fields {
		player := factory.CreatePlayer(e, slot, field)
		if opts.Bots[slot] {
			systems.AddBot(player, opts.BotDifficulty)
		}

		// Specials drop into the opponent's field
		specials, err := createSpecials(e, fields[1-slot])
		if err != nil {
			return nil, fmt.Errorf("player %d specials: %w", slot, err)
		}
		components.Player.Get(player).Patterns = specials

		// Each field also fires a cross formation at its own player
		cross, err := patterns.NewCross(e, field, rng)
		if err != nil {
			return nil, fmt.Errorf("field %d cross: %w", slot, err)
		}
		factory.CreateTimedTrigger(e, cfg.Round.AmbientInterval, factory.PatternTrigger(cross))
	}

	factory.CreateRound(e, fields)
	return e, nil
}

// createSpecials returns the special attacks by charge level, weakest first.
func createSpecials(e *ecs.ECS, target *donburi.Entry) ([]*donburi.Entry, error) {
	aimed, err := patterns.NewAimed(e, target)
	if err != nil {
		return nil, err
	}
	ring, err := patterns.NewRing(e, target)
	if err != nil {
		return nil, err
	}
	spiral, err := patterns.NewSpiral(e, target)
	if err != nil {
		return nil, err
	}
	return []*donburi.Entry{aimed, ring, spiral}, nil
}

func restartPressed(e *ecs.ECS) bool {
	pressed := false
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		if components.PlayerInput.Get(entry).Action(cfg.ActionFire).JustPressed {
			pressed = true
		}
	})
	return pressed
}
