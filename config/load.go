package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides maps a YAML document onto the global configuration values.
// Sections left out of the document keep their defaults, and so do fields
// left out of a section.
type overrides struct {
	Game    *Config       `yaml:"game"`
	Field   *FieldConfig  `yaml:"field"`
	Player  *PlayerConfig `yaml:"player"`
	Bullets *BulletConfig `yaml:"bullets"`
	Cross   *CrossConfig  `yaml:"cross"`
	Ring    *RingConfig   `yaml:"ring"`
	Spiral  *SpiralConfig `yaml:"spiral"`
	Aimed   *AimedConfig  `yaml:"aimed"`
	Round   *RoundConfig  `yaml:"round"`
	Debug   *DebugConfig  `yaml:"debug"`
}

// ApplyOverrides decodes a YAML document into the global configuration.
func ApplyOverrides(data []byte) error {
	o := overrides{
		Game:    C,
		Field:   &Field,
		Player:  &Player,
		Bullets: &Bullets,
		Cross:   &Cross,
		Ring:    &Ring,
		Spiral:  &Spiral,
		Aimed:   &Aimed,
		Round:   &Round,
		Debug:   &Debug,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config overrides: %w", err)
	}
	return nil
}

// LoadOverrides reads a YAML file and applies it with ApplyOverrides.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// UnmarshalYAML merges bullet type entries into the current table. An entry
// that only sets some fields keeps the rest, including its color.
func (b *BulletConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Types map[string]yaml.Node `yaml:"types"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	types := make(map[string]BulletTypeConfig, len(b.Types)+len(raw.Types))
	for name, t := range b.Types {
		types[name] = t
	}
	for name, node := range raw.Types {
		t := types[name]
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("bullet type %q: %w", name, err)
		}
		types[name] = t
	}
	b.Types = types
	return nil
}
