package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the window options that can be cycled in game
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Settings is the global window settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 640, Height: 400, Label: "640 x 400"},
			{Width: 1280, Height: 800, Label: "1280 x 800"},
			{Width: 1920, Height: 1200, Label: "1920 x 1200"},
		},
		DefaultResolutionIndex: 1,
	}
}
