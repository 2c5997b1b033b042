package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatterns steps every registered attack pattern once, in registration
// order. Patterns created by a hook are stepped in the same frame.
func UpdatePatterns(ecs *ecs.ECS) {
	registry := factory.GetOrCreateRegistry(ecs)
	for i := 0; i < len(registry.Patterns); i++ {
		entry := registry.Patterns[i]
		if entry == nil || !entry.Valid() {
			continue
		}
		StepPattern(ecs, entry)
	}
}

// StepPattern advances one attack pattern by a single frame.
//
// A starting pattern initializes; this is frame 0 of the run and, for timed
// and one-shot patterns, emits once. A running pattern first observes an
// external cancel, then its pause, then its finished condition, and only then
// runs its main loop. Every run ends with exactly one finalize.
func StepPattern(ecs *ecs.ECS, entry *donburi.Entry) {
	p := components.AttackPattern.Get(entry)

	if p.TakePendingFinalize() {
		// The previous run was canceled and restarted before we saw it
		finalizeRun(ecs, entry, p)
	}

	switch p.Phase {
	case components.PhaseIdle:
		return
	case components.PhaseStarting:
		if !p.Active {
			endRun(ecs, entry, p)
			return
		}
		initializeRun(ecs, entry, p)
		p.Phase = components.PhaseRunning
	case components.PhaseRunning:
		if !p.Active {
			endRun(ecs, entry, p)
			return
		}
		if p.Paused {
			return
		}
		if isFinished(ecs, entry, p) {
			endRun(ecs, entry, p)
			return
		}
		p.Frame++
		mainLoop(ecs, entry, p)
	}
}

func initializeRun(ecs *ecs.ECS, entry *donburi.Entry, p *components.AttackPatternData) {
	if p.Hooks.OnInitialize != nil {
		p.Hooks.OnInitialize(ecs, entry)
	}
	switch p.Kind {
	case components.PatternTimed:
		p.Interval.Reset()
		emit(ecs, entry, p)
	case components.PatternOneShot:
		emit(ecs, entry, p)
	}
}

func mainLoop(ecs *ecs.ECS, entry *donburi.Entry, p *components.AttackPatternData) {
	if p.Hooks.MainLoop != nil {
		p.Hooks.MainLoop(ecs, entry)
	}
	if p.Kind == components.PatternTimed && p.Interval.Tick() {
		emit(ecs, entry, p)
	}
}

func emit(ecs *ecs.ECS, entry *donburi.Entry, p *components.AttackPatternData) {
	p.Emissions++
	if p.Hooks.Emit != nil {
		p.Hooks.Emit(ecs, entry)
	}
}

func isFinished(ecs *ecs.ECS, entry *donburi.Entry, p *components.AttackPatternData) bool {
	if p.Hooks.IsFinished != nil {
		return p.Hooks.IsFinished(ecs, entry)
	}
	// Timed and custom patterns without a predicate run until canceled
	return p.Kind == components.PatternOneShot
}

func finalizeRun(ecs *ecs.ECS, entry *donburi.Entry, p *components.AttackPatternData) {
	if p.Hooks.OnFinalize != nil {
		p.Hooks.OnFinalize(ecs, entry)
	}
	p.Runs++
}

// endRun returns the pattern to idle before finalizing, so OnFinalize may
// fire it again.
func endRun(ecs *ecs.ECS, entry *donburi.Entry, p *components.AttackPatternData) {
	p.Active = false
	p.Phase = components.PhaseIdle
	finalizeRun(ecs, entry, p)
}
