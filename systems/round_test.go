package systems

import (
	"testing"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type versusFixture struct {
	e       *ecs.ECS
	fields  [2]*donburi.Entry
	players [2]*donburi.Entry
	round   *components.RoundData
	pattern *donburi.Entry
}

func newVersusFixture(t *testing.T) *versusFixture {
	t.Helper()
	e, fields := newTestWorld(t)
	f := &versusFixture{e: e, fields: fields}
	for i := range fields {
		f.players[i] = factory.CreatePlayer(e, i, fields[i])
	}
	factory.CreateRound(e, fields)
	f.round, _ = GetRound(e)

	pattern, err := factory.CreateAttackPattern(e, factory.PatternConfig{
		Name: "idle", Kind: components.PatternTimed, Field: fields[1], Interval: 10,
		Hooks: components.PatternHooks{Emit: func(*ecs.ECS, *donburi.Entry) {}},
	})
	if err != nil {
		t.Fatal(err)
	}
	f.pattern = pattern
	return f
}

// runReset steps the round controller until the between-rounds transition ends.
func (f *versusFixture) runReset(t *testing.T) {
	t.Helper()
	for i := 0; i < 600 && f.round.Resetting(); i++ {
		UpdateRound(f.e)
	}
	if f.round.Resetting() {
		t.Fatal("Round reset did not finish")
	}
}

func TestRoundResetAfterDeath(t *testing.T) {
	f := newVersusFixture(t)
	_ = components.AttackPattern.Get(f.pattern).Fire()
	if _, err := factory.GetProjectile(f.e, "fat", components.Field.Get(f.fields[0]).Center, 0, f.fields[0]); err != nil {
		t.Fatal(err)
	}
	loser := components.Player.Get(f.players[1])
	loser.Lives = 0
	loser.Position = dmath.Vec2{}

	UpdateRound(f.e)

	if !f.round.Resetting() || !GetOrCreatePause(f.e).Paused() {
		t.Fatal("Expected the reset to start and hold the pause")
	}

	f.runReset(t)

	if f.round.Slots[0].Score != 1 || f.round.Slots[1].Score != 0 {
		t.Errorf("Expected 1 - 0, got %d - %d", f.round.Slots[0].Score, f.round.Slots[1].Score)
	}
	if loser.Lives != cfg.Player.MaxLives {
		t.Errorf("Expected lives restored, got %d", loser.Lives)
	}
	if loser.Position != factory.SpawnPosition(components.Field.Get(f.fields[1])) {
		t.Error("Expected the player back at spawn")
	}
	if n := len(factory.ActiveProjectiles(f.e)); n != 0 {
		t.Errorf("Expected all projectiles cleared, got %d", n)
	}
	if components.AttackPattern.Get(f.pattern).Active {
		t.Error("Expected patterns canceled")
	}
	if GetOrCreatePause(f.e).Paused() {
		t.Error("Expected gameplay unpaused after the reset")
	}
	if f.round.Closure != 0 || f.round.Remaining != f.round.RoundTime {
		t.Errorf("Unexpected round state closure=%v remaining=%v", f.round.Closure, f.round.Remaining)
	}
}

func TestRoundClosureTweens(t *testing.T) {
	f := newVersusFixture(t)
	components.Player.Get(f.players[0]).Lives = 0

	UpdateRound(f.e) // starts the reset
	UpdateRound(f.e)
	if f.round.Closure <= 0 || f.round.Closure >= 1 {
		t.Errorf("Expected a partial closure, got %v", f.round.Closure)
	}

	peak := 0.0
	for i := 0; i < 600 && f.round.Resetting(); i++ {
		UpdateRound(f.e)
		peak = max(peak, f.round.Closure)
	}
	if peak < 0.99 {
		t.Errorf("Expected the closure to fully close, peaked at %v", peak)
	}
}

func TestRoundTimeout(t *testing.T) {
	f := newVersusFixture(t)
	f.round.Remaining = testDT / 2

	UpdateRound(f.e)
	if !f.round.Resetting() {
		t.Fatal("Expected a reset when time runs out")
	}
	f.runReset(t)

	if f.round.Slots[0].Score != 0 || f.round.Slots[1].Score != 0 {
		t.Error("A timeout with both alive scores nobody")
	}
	if f.round.Rounds != 1 {
		t.Errorf("Expected 1 round played, got %d", f.round.Rounds)
	}
}

func TestMatchWinAndRestart(t *testing.T) {
	f := newVersusFixture(t)
	f.round.Slots[1].Score = f.round.WinningScore - 1
	components.Player.Get(f.players[0]).Lives = 0

	UpdateRound(f.e)
	f.runReset(t)

	if !f.round.Finished() || f.round.Winner != 1 {
		t.Fatalf("Expected player 2 to win, winner=%d", f.round.Winner)
	}
	before := f.round.Remaining
	UpdateRound(f.e)
	if f.round.Remaining != before {
		t.Error("A finished match should not tick")
	}

	RestartMatch(f.e, cfg.Round.WinningScore)
	if f.round.Finished() || f.round.Slots[1].Score != 0 {
		t.Error("Expected a fresh match after restart")
	}
}

func TestUserPauseFreezesRound(t *testing.T) {
	f := newVersusFixture(t)
	GetOrCreatePause(f.e).IsPaused = true
	before := f.round.Remaining

	UpdateRound(f.e)

	if f.round.Remaining != before {
		t.Error("Paused round should not count down")
	}
}

func TestRoundTimerText(t *testing.T) {
	tests := []struct {
		remaining float64
		want      string
	}{
		{99, "01:39"},
		{60, "01:00"},
		{5.9, "00:05"},
		{0, "00:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := RoundTimerText(tt.remaining); got != tt.want {
			t.Errorf("RoundTimerText(%v) = %q, want %q", tt.remaining, got, tt.want)
		}
	}
}

func TestTimerFlashBelowThreshold(t *testing.T) {
	f := newVersusFixture(t)

	UpdateRound(f.e)
	if f.round.TimerFlash {
		t.Error("Timer should not flash above the threshold")
	}

	f.round.Remaining = cfg.Round.TimerFlashThreshold - 1
	UpdateRound(f.e)
	if !f.round.TimerFlash {
		t.Error("Expected the first flash immediately below the threshold")
	}

	toggles := 0
	for i := 0; i < cfg.Round.TimerFlashFrames*2; i++ {
		was := f.round.TimerFlash
		UpdateRound(f.e)
		if f.round.TimerFlash != was {
			toggles++
		}
	}
	if toggles != 2 {
		t.Errorf("Expected 2 toggles over two flash periods, got %d", toggles)
	}
}
