// Package config loads the planner configuration from a YAML file and
// environment variables. Priority: ENV > YAML > defaults.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aretw0/almanac/pkg/schedule"
)

// Config is the root application configuration.
type Config struct {
	// Vault is the directory holding the event and note collections.
	Vault string `yaml:"vault" env:"ALMANAC_VAULT" env-default:"."`

	// NoSeed disables populating an empty or corrupt vault with
	// generated demo data. Stated negatively so the zero value keeps
	// seeding on, which sidesteps cleanenv re-applying defaults over
	// an explicit false.
	NoSeed bool `yaml:"no_seed" env:"ALMANAC_NO_SEED"`

	Day  WindowConfig `yaml:"day" env-prefix:"ALMANAC_DAY_"`
	Week WindowConfig `yaml:"week" env-prefix:"ALMANAC_WEEK_"`
}

// WindowConfig holds a baseline visible hour range. Negative values
// mean "use the built-in default".
type WindowConfig struct {
	StartHour int `yaml:"start_hour" env:"START_HOUR" env-default:"-1"`
	EndHour   int `yaml:"end_hour" env:"END_HOUR" env-default:"-1"`
}

// window converts the config to a schedule.Window, using def for
// unset fields.
func (w WindowConfig) window(def schedule.Window) schedule.Window {
	out := def
	if w.StartHour >= 0 {
		out.Start = w.StartHour
	}
	if w.EndHour >= 0 {
		out.End = w.EndHour
	}
	return out
}

// SeedEnabled reports whether demo data seeding is active.
func (c *Config) SeedEnabled() bool {
	return !c.NoSeed
}

// DayWindow returns the configured baseline for the day view.
func (c *Config) DayWindow() schedule.Window {
	return c.Day.window(schedule.DefaultDayWindow)
}

// WeekWindow returns the configured baseline for the week view.
func (c *Config) WeekWindow() schedule.Window {
	return c.Week.window(schedule.DefaultWeekWindow)
}

// Validate checks hour bounds.
func (c *Config) Validate() error {
	for _, w := range []schedule.Window{c.DayWindow(), c.WeekWindow()} {
		if w.Start < 0 || w.End > 23 || w.Start > w.End {
			return fmt.Errorf("invalid hour window %d..%d", w.Start, w.End)
		}
	}
	return nil
}

// Load reads configuration. The YAML file path is determined by
// ALMANAC_CONFIG (fallback "./almanac.yaml"). If the file does not
// exist and ALMANAC_CONFIG was not set explicitly, configuration is
// loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("ALMANAC_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = "./almanac.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
