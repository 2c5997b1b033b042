package systems

import (
	"math"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/shared/timing"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddBot hands control of a player to the dodging AI.
func AddBot(player *donburi.Entry, difficulty cfg.BotDifficulty) {
	tuning := cfg.Bot.Difficulties[difficulty]
	player.AddComponent(components.Bot)
	components.Bot.SetValue(player, components.BotData{
		Difficulty: difficulty,
		Reaction:   timing.NewFrameCounter(tuning.ReactionDelay),
	})
}

// UpdateBots generates input for bot-controlled players.
// Must run AFTER UpdateInput so bots override device input.
func UpdateBots(e *ecs.ECS) {
	var bots []*donburi.Entry
	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		bots = append(bots, entry)
	})
	if len(bots) == 0 {
		return
	}

	active := factory.ActiveProjectiles(e)
	for _, entry := range bots {
		updateBotAI(entry, active)
	}
}

func updateBotAI(entry *donburi.Entry, projectiles []*donburi.Entry) {
	bot := components.Bot.Get(entry)
	input := components.PlayerInput.Get(entry)
	player := components.Player.Get(entry)
	tuning := cfg.Bot.Difficulties[bot.Difficulty]

	BeginInputFrame(input)
	if player.Field == nil || !player.Field.Valid() {
		return
	}
	field := components.Field.Get(player.Field)

	if bot.Reaction.Tick() {
		decideDodge(bot, player, field, projectiles, tuning)
	}

	setAction(input, cfg.ActionMoveLeft, bot.MoveX < 0)
	setAction(input, cfg.ActionMoveRight, bot.MoveX > 0)
	setAction(input, cfg.ActionMoveDown, bot.MoveY < 0)
	setAction(input, cfg.ActionMoveUp, bot.MoveY > 0)
	setAction(input, cfg.ActionFocus, bot.Focus)

	// Hold charge until the target level is reached, fire otherwise
	charging := player.Charging && player.ChargeLevel < float64(tuning.ChargeLevel)
	if !player.Charging && player.ChargeCapacity >= float64(tuning.ChargeLevel)+1 && tuning.ChargeLevel < player.MaxChargeLevel() {
		charging = true
	}
	setAction(input, cfg.ActionCharge, charging)
	setAction(input, cfg.ActionFire, !charging)
}

// decideDodge steers away from the nearest hostile bullet in the bot's field
// and drifts back toward the spawn line when nothing is close.
func decideDodge(bot *components.BotData, player *components.PlayerData, field *components.FieldData, projectiles []*donburi.Entry, tuning cfg.BotDifficultyConfig) {
	nearest := math.Inf(1)
	var threat *components.ProjectileData
	for _, pe := range projectiles {
		p := components.Projectile.Get(pe)
		if !p.Active || p.Owner >= 0 || p.Field != player.Field {
			continue
		}
		if d := p.Position.Distance(player.Position); d < nearest {
			nearest = d
			threat = p
		}
	}

	self := field.ViewPoint(player.Position)
	if threat == nil || nearest > tuning.DodgeRadius {
		bot.Focus = false
		bot.MoveX = int(gamemath.Sign(0.5 - self.X))
		bot.MoveY = int(gamemath.Sign(cfg.Player.Spawn.Y - self.Y))
		if math.Abs(0.5-self.X) < 0.05 {
			bot.MoveX = 0
		}
		if math.Abs(cfg.Player.Spawn.Y-self.Y) < 0.05 {
			bot.MoveY = 0
		}
		return
	}

	bullet := field.ViewPoint(threat.Position)
	bot.Focus = nearest < tuning.FocusRadius
	bot.MoveX = -int(gamemath.Sign(bullet.X - self.X))
	bot.MoveY = -int(gamemath.Sign(bullet.Y - self.Y))
	// Pinned against a wall, slide along it instead
	if (self.X <= 0.02 && bot.MoveX < 0) || (self.X >= 0.98 && bot.MoveX > 0) {
		bot.MoveX = 0
		if bot.MoveY == 0 {
			bot.MoveY = 1
		}
	}
}

func setAction(input *components.PlayerInputData, id cfg.ActionID, pressed bool) {
	input.CurrentInput[id] = pressed
}
