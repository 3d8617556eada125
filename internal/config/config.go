package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Console  Console `yaml:"console"`
}

type Console struct {
	PlayerGlyph    string `yaml:"player-glyph" env:"PLAYER_GLYPH" env-default:"X"`
	CPUGlyph       string `yaml:"cpu-glyph" env:"CPU_GLYPH" env-default:"O"`
	EmptyGlyph     string `yaml:"empty-glyph" env:"EMPTY_GLYPH" env-default:"."`
	Prompt         string `yaml:"prompt" env-default:"Choose index(0 to 8):"`
	NoBoardMessage string `yaml:"no-board-message" env-default:"No moves yet!"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file is fine: the game then runs on env vars and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config defaults: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
