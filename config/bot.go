package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Frames between dodge decisions
	DodgeRadius   float64 // Bullets closer than this are dodged
	FocusRadius   float64 // Bullets closer than this switch to focused movement
	ChargeLevel   int     // Special attack level the bot charges to
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 20,
				DodgeRadius:   30,
				FocusRadius:   0,
				ChargeLevel:   1,
			},
			BotDifficultyNormal: {
				ReactionDelay: 8,
				DodgeRadius:   45,
				FocusRadius:   20,
				ChargeLevel:   2,
			},
			BotDifficultyHard: {
				ReactionDelay: 2,
				DodgeRadius:   60,
				FocusRadius:   25,
				ChargeLevel:   3,
			},
		},
	}
}
