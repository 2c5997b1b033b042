package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Point is a plain 2D coordinate used in configuration.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FieldConfig contains the layout of the two play fields
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"` // Horizontal space between the two fields
	Top    float64 `yaml:"top"`

	// Projectiles further than this outside the field are deactivated
	OffFieldMargin float64 `yaml:"offFieldMargin"`

	// Collision space cell size
	CellSize int `yaml:"cellSize"`
}

// PlayerConfig contains all player avatar configuration values
type PlayerConfig struct {
	// Movement (world units per second)
	NormalSpeed float64 `yaml:"normalSpeed"`
	FocusSpeed  float64 `yaml:"focusSpeed"`

	// Shots per second while firing
	FireRate     float64 `yaml:"fireRate"`
	ShotType     string  `yaml:"shotType"`
	ShotVelocity float64 `yaml:"shotVelocity"`
	ShotSpread   float64 `yaml:"shotSpread"` // Horizontal offset of the twin shots

	// Shots leaving the top of the field drop into the opponent's field at
	// this speed. 0 disables returning shots.
	ReturnVelocity float64 `yaml:"returnVelocity"`

	// Charge
	ChargeRate          float64 `yaml:"chargeRate"`          // Levels per second while charging
	ChargeCapacityRegen float64 `yaml:"chargeCapacityRegen"` // Capacity regained per second
	StartingCapacity    float64 `yaml:"startingCapacity"`

	// Lives
	MaxLives int `yaml:"maxLives"`

	// Invincibility after a hit (frames)
	DeathInvulnFrames int `yaml:"deathInvulnFrames"`
	InvulnFlashFrames int `yaml:"invulnFlashFrames"`

	// Bullet cancel area spawned on hit
	DeathCancelDuration float64 `yaml:"deathCancelDuration"` // seconds
	DeathCancelRadius   float64 `yaml:"deathCancelRadius"`

	// Dimensions
	HitboxRadius float64 `yaml:"hitboxRadius"`
	GrazeRadius  float64 `yaml:"grazeRadius"`

	// Spawn position in view coordinates of the player's own field
	Spawn Point `yaml:"spawn"`
}

// BulletTypeConfig describes one projectile type
type BulletTypeConfig struct {
	Radius float64    `yaml:"radius"`
	Color  color.RGBA `yaml:"-"`
}

// BulletConfig contains the projectile type table
type BulletConfig struct {
	Types map[string]BulletTypeConfig `yaml:"types"`
}

// CrossConfig contains the cross formation pattern values
type CrossConfig struct {
	Interval   int     `yaml:"interval"` // Frames between volleys
	Volleys    int     `yaml:"volleys"`  // Volleys before the pattern finishes (0 = until canceled)
	FatBullet  string  `yaml:"fatBullet"`
	ThinBullet string  `yaml:"thinBullet"`
	Velocity   float64 `yaml:"velocity"`
	Separation float64 `yaml:"separation"` // View units between bullets in a column
	// Rectangle (view coordinates) the formation center is sampled from
	CenterMin Point `yaml:"centerMin"`
	CenterMax Point `yaml:"centerMax"`
}

// RingConfig contains the ring burst pattern values
type RingConfig struct {
	Interval        int     `yaml:"interval"`
	Volleys         int     `yaml:"volleys"` // Volleys before the pattern finishes (0 = until canceled)
	Count           int     `yaml:"count"`
	Bullet          string  `yaml:"bullet"`
	Velocity        float64 `yaml:"velocity"`
	AngularVelocity float64 `yaml:"angularVelocity"` // degrees per second, 0 = straight
	Origin          Point   `yaml:"origin"`
}

// SpiralConfig contains the spiral pattern values
type SpiralConfig struct {
	Bullet   string  `yaml:"bullet"`
	Velocity float64 `yaml:"velocity"`
	Step     float64 `yaml:"step"`  // Degrees the emitter turns per shot
	Arms     int     `yaml:"arms"`  // Evenly spaced emitters
	Shots    int     `yaml:"shots"` // Shots per arm before finishing
	Every    int     `yaml:"every"` // Frames between shots
	Origin   Point   `yaml:"origin"`
}

// AimedConfig contains the aimed burst pattern values
type AimedConfig struct {
	Bullet       string  `yaml:"bullet"`
	Count        int     `yaml:"count"`
	Spread       float64 `yaml:"spread"` // Total fan angle in degrees
	Velocity     float64 `yaml:"velocity"`
	Acceleration float64 `yaml:"acceleration"`
	CapSpeed     float64 `yaml:"capSpeed"`
	Origin       Point   `yaml:"origin"`
}

// RoundConfig contains versus round configuration values
type RoundConfig struct {
	WinningScore    int     `yaml:"winningScore"`
	RoundTime       float64 `yaml:"roundTime"`       // seconds
	ClosureDuration float64 `yaml:"closureDuration"` // seconds, full close + open

	// Round timer flashes below this many seconds
	TimerFlashThreshold float64 `yaml:"timerFlashThreshold"`
	TimerFlashFrames    int     `yaml:"timerFlashFrames"`

	// Frames between the cross formations each field fires on its own
	AmbientInterval int `yaml:"ambientInterval"`
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	FieldColor      color.RGBA
	BorderColor     color.RGBA
	PlayerColors    [2]color.RGBA
	CancelColor     color.RGBA
	TextColor       color.RGBA
	FlashColor      color.RGBA
	ClosureColor    color.RGBA
	HUDFontSize     float64
	TitleFontSize   float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed         int64 `yaml:"seed"`
	ShowHitboxes bool  `yaml:"showHitboxes"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// Global configuration instances
var C *Config
var Field FieldConfig
var Player PlayerConfig
var Bullets BulletConfig
var Cross CrossConfig
var Ring RingConfig
var Spiral SpiralConfig
var Aimed AimedConfig
var Round RoundConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// TargetDeltaTime is the fixed simulation step in seconds.
func TargetDeltaTime() float64 {
	if C == nil || C.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 400,
		TPS:    60,
	}

	Field = FieldConfig{
		Width:          300,
		Height:         360,
		Gap:            20,
		Top:            30,
		OffFieldMargin: 32,
		CellSize:       16,
	}

	Player = PlayerConfig{
		NormalSpeed: 180,
		FocusSpeed:  90,

		FireRate:     12,
		ShotType:     "shot",
		ShotVelocity: 480,
		ShotSpread:   6,

		ReturnVelocity: 90,

		ChargeRate:          1.2,
		ChargeCapacityRegen: 0.25,
		StartingCapacity:    1,

		MaxLives: 3,

		DeathInvulnFrames: 120,
		InvulnFlashFrames: 4,

		DeathCancelDuration: 0.5,
		DeathCancelRadius:   40,

		HitboxRadius: 3,
		GrazeRadius:  16,

		Spawn: Point{X: 0.5, Y: 0.15},
	}

	Bullets = BulletConfig{
		Types: map[string]BulletTypeConfig{
			"shot":  {Radius: 3, Color: White},
			"fat":   {Radius: 7, Color: Red},
			"thin":  {Radius: 3, Color: LightBlue},
			"ring":  {Radius: 5, Color: Yellow},
			"arrow": {Radius: 4, Color: Magenta},
		},
	}

	Cross = CrossConfig{
		Interval:   45,
		Volleys:    4,
		FatBullet:  "fat",
		ThinBullet: "thin",
		Velocity:   90,
		Separation: 0.03,
		CenterMin:  Point{X: 0.3, Y: 0.6},
		CenterMax:  Point{X: 0.7, Y: 0.85},
	}

	Ring = RingConfig{
		Interval:        30,
		Volleys:         6,
		Count:           24,
		Bullet:          "ring",
		Velocity:        110,
		AngularVelocity: 20,
		Origin:          Point{X: 0.5, Y: 0.8},
	}

	Spiral = SpiralConfig{
		Bullet:   "arrow",
		Velocity: 120,
		Step:     11,
		Arms:     3,
		Shots:    60,
		Every:    3,
		Origin:   Point{X: 0.5, Y: 0.75},
	}

	Aimed = AimedConfig{
		Bullet:       "arrow",
		Count:        7,
		Spread:       60,
		Velocity:     60,
		Acceleration: 120,
		CapSpeed:     300,
		Origin:       Point{X: 0.5, Y: 0.9},
	}

	Round = RoundConfig{
		WinningScore:        3,
		RoundTime:           99,
		ClosureDuration:     1.0,
		TimerFlashThreshold: 10,
		TimerFlashFrames:    15,
		AmbientInterval:     420,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		FieldColor:      color.RGBA{R: 5, G: 5, B: 15, A: 255},
		BorderColor:     color.RGBA{R: 60, G: 100, B: 160, A: 255},
		PlayerColors:    [2]color.RGBA{Orange, Green},
		CancelColor:     color.RGBA{R: 255, G: 255, B: 255, A: 60},
		TextColor:       White,
		FlashColor:      Red,
		ClosureColor:    BlackOverlay,
		HUDFontSize:     12,
		TitleFontSize:   24,
	}

	Debug = DebugConfig{
		Seed: 1,
	}
}
