package main

import (
	"flag"
	"log"

	"github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/fonts"
	"github.com/automoto/danmaku/scenes"
	"github.com/automoto/danmaku/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.VersusOptions) *Game {
	fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize)
	return &Game{scene: scenes.NewVersusScene(opts)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	seed := flag.Int64("seed", 0, "Random seed for pattern placement (0 = config value)")
	bot0 := flag.Bool("bot1", false, "Let the AI control player 1")
	bot1 := flag.Bool("bot2", true, "Let the AI control player 2")
	difficulty := flag.Int("difficulty", int(config.BotDifficultyNormal), "Bot difficulty (0 easy, 1 normal, 2 hard)")
	hitboxes := flag.Bool("hitboxes", false, "Always draw player hitboxes")
	resolution := flag.Int("resolution", -1, "Window size index, saved for later runs (-1 = saved or default)")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen, saved for later runs")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		config.Debug.Seed = *seed
	}
	if *hitboxes {
		config.Debug.ShowHitboxes = true
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	// Only an explicit -fullscreen replaces the saved value
	var fullscreenFlag *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "fullscreen" {
			fullscreenFlag = fullscreen
		}
	})
	saved, _ := systems.LoadSettings()
	settings, changed := saved.WithOverrides(*resolution, fullscreenFlag)
	if changed {
		_ = systems.SaveSettings(settings)
	}
	if record, err := systems.LoadMatchRecord(); err == nil && record.Matches > 0 {
		log.Printf("Match record: %d matches, P1 %d wins, P2 %d wins", record.Matches, record.Wins[0], record.Wins[1])
	}

	systems.ApplySettings(settings)
	ebiten.SetWindowTitle("danmaku")
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(scenes.VersusOptions{
		Bots:          [2]bool{*bot0, *bot1},
		BotDifficulty: config.BotDifficulty(*difficulty),
		Seed:          config.Debug.Seed,
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
