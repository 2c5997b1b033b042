package components

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/danmaku/shared/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrPatternActive is returned when firing a pattern that is still running.
var ErrPatternActive = errors.New("attack pattern already active")

// PatternKind selects the built-in behavior of an attack pattern.
type PatternKind int

const (
	// PatternTimed emits on activation and again every Interval frames.
	PatternTimed PatternKind = iota
	// PatternOneShot emits once on activation and then finishes.
	PatternOneShot
	// PatternCustom runs its MainLoop hook until IsFinished holds.
	PatternCustom
)

func (k PatternKind) String() string {
	switch k {
	case PatternTimed:
		return "timed"
	case PatternOneShot:
		return "one-shot"
	case PatternCustom:
		return "custom"
	}
	return "unknown"
}

// PatternPhase is the execution state of an attack pattern.
type PatternPhase int

const (
	PhaseIdle PatternPhase = iota
	PhaseStarting
	PhaseRunning
)

// PatternHook is called with the ECS and the pattern's own entry.
type PatternHook func(e *ecs.ECS, pattern *donburi.Entry)

// PatternPredicate decides whether a running pattern is finished.
type PatternPredicate func(e *ecs.ECS, pattern *donburi.Entry) bool

// PatternHooks is the capability table of a pattern. Every hook is optional
// except where the pattern kind needs it (Emit for timed and one-shot,
// MainLoop for custom).
type PatternHooks struct {
	OnInitialize PatternHook
	MainLoop     PatternHook
	Emit         PatternHook
	IsFinished   PatternPredicate
	OnFinalize   PatternHook
}

// AttackPatternData is the resumable state record of one attack pattern.
// The pattern scheduler advances it once per frame.
type AttackPatternData struct {
	Name   string
	Kind   PatternKind
	Hooks  PatternHooks
	Field  *donburi.Entry // field bullets are spawned into
	Active bool
	Paused bool
	Phase  PatternPhase

	Interval timing.FrameCounter // timed patterns only

	Frame      int // steps since the run started, 0 on the initializing step
	Emissions  int // emissions during the current run
	Runs       int // completed runs
	Rejections int // Fire calls rejected because the pattern was active

	// Set when Fire restarts a running pattern whose cancellation was not
	// yet observed; the old run is finalized before the new one initializes.
	// A run canceled before its first step never initialized and is simply
	// restarted.
	pendingFinalize bool
}

var AttackPattern = donburi.NewComponentType[AttackPatternData]()

// Fire starts a run. Firing a pattern that is already active is rejected,
// logged and reported as ErrPatternActive.
func (p *AttackPatternData) Fire() error {
	if p.Active {
		p.Rejections++
		log.Printf("[pattern] %q: tried firing an already running attack pattern", p.Name)
		return fmt.Errorf("fire %q: %w", p.Name, ErrPatternActive)
	}
	if p.Phase == PhaseRunning {
		p.pendingFinalize = true
	}
	p.Active = true
	p.Phase = PhaseStarting
	p.Frame = 0
	p.Emissions = 0
	return nil
}

// Cancel stops the pattern at its next step.
func (p *AttackPatternData) Cancel() {
	p.Active = false
}

// Running reports whether a run is in progress or awaiting finalization.
func (p *AttackPatternData) Running() bool {
	return p.Phase != PhaseIdle
}

// TakePendingFinalize reports and clears a finalize owed by a restarted run.
func (p *AttackPatternData) TakePendingFinalize() bool {
	pending := p.pendingFinalize
	p.pendingFinalize = false
	return pending
}
