package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/scenes"
	"github.com/automoto/danmaku/systems"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	frames := flag.Int("frames", 60*60, "Frames to simulate")
	every := flag.Int("every", 60, "Frames between log lines (0 = round events only)")
	seed := flag.Int64("seed", 1, "Random seed for pattern placement")
	difficulty := flag.Int("difficulty", int(config.BotDifficultyNormal), "Bot difficulty (0 easy, 1 normal, 2 hard)")
	matches := flag.Int("matches", 1, "Matches to play before stopping")
	record := flag.Bool("record", false, "Store match results like the game does")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *record {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
	}

	e, err := scenes.NewVersusWorld(scenes.VersusOptions{
		Bots:          [2]bool{true, true},
		BotDifficulty: config.BotDifficulty(*difficulty),
		Seed:          *seed,
	})
	if err != nil {
		log.Fatalf("Failed to build match: %v", err)
	}

	dt := config.TargetDeltaTime()
	played := 0
	for i := 0; i < *frames; i++ {
		systems.SetDeltaTime(e, dt)
		e.Update()

		round, ok := systems.GetRound(e)
		if !ok {
			log.Fatal("Match has no round controller")
		}
		if *every > 0 && i%*every == 0 {
			printFrame(e, round)
		}
		if round.Finished() && !round.Resetting() {
			played++
			printFrame(e, round)
			fmt.Printf("match %d: player %d wins after %d rounds\n", played, round.Winner+1, round.Rounds)
			if played >= *matches {
				break
			}
			systems.RestartMatch(e, config.Round.WinningScore)
		}
	}

	created, free := factory.PoolStats(e)
	fmt.Printf("frames=%d matches=%d projectiles created=%d pooled=%d\n",
		systems.GetOrCreateClock(e).Frame, played, created, free)
}

func printFrame(e *ecs.ECS, round *components.RoundData) {
	var lives [2]int
	for i, slot := range round.Slots {
		f := components.Field.Get(slot.Field)
		if f.Player != nil && f.Player.Valid() {
			lives[i] = components.Player.Get(f.Player).Lives
		}
	}
	fmt.Printf("frame=%d time=%s bullets=%d lives=%d/%d score=%d-%d closure=%.2f\n",
		systems.GetOrCreateClock(e).Frame,
		systems.RoundTimerText(round.Remaining),
		len(factory.ActiveProjectiles(e)),
		lives[0], lives[1],
		round.Slots[0].Score, round.Slots[1].Score,
		round.Closure,
	)
}
