package systems

import (
	"fmt"
	"log"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetRound returns the versus round controller, if the scene has one.
func GetRound(e *ecs.ECS) (*components.RoundData, bool) {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Round.Get(entry), true
}

// UpdateRound counts down the round, starts the between-rounds reset when a
// player runs out of lives or time runs out, and drives the reset closure.
// Runs last and is not wrapped in the gameplay pause, which it holds itself.
func UpdateRound(e *ecs.ECS) {
	round, ok := GetRound(e)
	if !ok {
		return
	}
	pause := GetOrCreatePause(e)
	if pause.IsPaused {
		return
	}
	dt := DeltaTime(e)

	if round.Resetting() {
		advanceReset(e, round, dt)
		return
	}
	if round.Finished() {
		return
	}

	round.Remaining -= dt
	if round.Remaining < 0 {
		round.Remaining = 0
	}
	updateTimerFlash(round)

	dead := deadPlayers(round)
	if dead[0] || dead[1] || round.Remaining <= 0 {
		startReset(e, round)
	}
}

func deadPlayers(round *components.RoundData) [2]bool {
	var dead [2]bool
	for i, slot := range round.Slots {
		if slot.Field == nil || !slot.Field.Valid() {
			continue
		}
		field := components.Field.Get(slot.Field)
		if field.Player == nil || !field.Player.Valid() {
			continue
		}
		dead[i] = components.Player.Get(field.Player).Lives <= 0
	}
	return dead
}

func startReset(e *ecs.ECS, round *components.RoundData) {
	GetOrCreatePause(e).RoundPaused = true
	round.Phase = components.ResetClosing
	round.Tween = gween.New(0, 1, float32(round.ClosureDuration/2), ease.Linear)
}

func advanceReset(e *ecs.ECS, round *components.RoundData, dt float64) {
	closure, done := round.Tween.Update(float32(dt))
	round.Closure = float64(closure)
	if !done {
		return
	}

	switch round.Phase {
	case components.ResetClosing:
		wasSuddenDeath := round.SuddenDeath
		round.ScoreRound(deadPlayers(round))
		log.Printf("[round] round %d over: %d - %d", round.Rounds, round.Slots[0].Score, round.Slots[1].Score)
		if round.SuddenDeath && !wasSuddenDeath {
			log.Printf("[round] sudden death")
		}
		if round.Finished() {
			log.Printf("[round] player %d wins the match", round.Winner+1)
			RecordMatch(round.Winner)
		}
		ResetRound(e, round)
		round.Phase = components.ResetOpening
		round.Tween = gween.New(1, 0, float32(round.ClosureDuration/2), ease.Linear)
	case components.ResetOpening:
		round.Phase = components.ResetNone
		round.Closure = 0
		round.Tween = nil
		GetOrCreatePause(e).RoundPaused = false
	}
}

// ResetRound puts both fields back to the start of a round: lives and
// positions restored, camera rotation cleared, every bullet, cancel area and
// attack pattern stopped.
func ResetRound(e *ecs.ECS, round *components.RoundData) {
	for _, slot := range round.Slots {
		if slot.Field == nil || !slot.Field.Valid() {
			continue
		}
		field := components.Field.Get(slot.Field)
		field.Rotation = 0
		if field.Player == nil || !field.Player.Valid() {
			continue
		}
		player := components.Player.Get(field.Player)
		player.Reset(round.MaxLives)
		player.Position = factory.SpawnPosition(field)
		player.Invincible = false
		player.Flash = false
		player.Charging = false
		player.ChargeLevel = 0
		player.FireDelay = 0
		player.ForbiddenMovement.X = 0
		player.ForbiddenMovement.Y = 0
	}

	factory.DeactivateAll(e)
	ClearCancelAreas(e)

	registry := factory.GetOrCreateRegistry(e)
	for _, entry := range registry.Patterns {
		if entry != nil && entry.Valid() {
			components.AttackPattern.Get(entry).Cancel()
		}
	}

	round.Remaining = round.RoundTime
	round.TimerFlash = false
	round.TimerFlashClock.ForceReady()
}

// RestartMatch clears the scores of a finished match and starts over.
func RestartMatch(e *ecs.ECS, winningScore int) {
	round, ok := GetRound(e)
	if !ok {
		return
	}
	round.Slots[0].Score = 0
	round.Slots[1].Score = 0
	round.WinningScore = winningScore
	round.SuddenDeath = false
	round.Winner = components.NoWinner
	round.Rounds = 0
	ResetRound(e, round)
}

// updateTimerFlash blinks the timer once the round is nearly over. Above the
// threshold the clock is primed so the first flash shows immediately.
func updateTimerFlash(round *components.RoundData) {
	if round.Remaining > cfg.Round.TimerFlashThreshold {
		round.TimerFlash = false
		round.TimerFlashClock.ForceReady()
		return
	}
	if round.TimerFlashClock.Tick() {
		round.TimerFlash = !round.TimerFlash
	}
}

// RoundTimerText formats the remaining round time as MM:SS.
func RoundTimerText(remaining float64) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
