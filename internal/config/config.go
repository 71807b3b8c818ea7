package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// TimerConfig holds the initial interval and round settings
	TimerConfig struct {
		Interval int `mapstructure:"interval"`
		Rounds   int `mapstructure:"rounds"`
	}

	// SoundConfig holds chime settings
	SoundConfig struct {
		Chime  string `mapstructure:"chime"`
		Volume int    `mapstructure:"volume"`
		// Dir is searched for chime files given by name
		Dir string `mapstructure:"-"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Color     string `mapstructure:"color"`
		DarkTheme bool   `mapstructure:"dark_theme"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		Cmd       string `mapstructure:"cmd"`
		AutoStart bool   `mapstructure:"auto_start"`
		History   bool   `mapstructure:"history"`
	}

	// CLIConfig holds options that only exist on the command line
	CLIConfig struct {
		Headless bool
		Debug    bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// SoundOff disables the chime.
const SoundOff = "off"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order, and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithSoundsDir sets the directory searched for custom chime files.
func WithSoundsDir(dir string) Option {
	return func(c *Config) error {
		c.Sound.Dir = dir
		return nil
	}
}

// IntervalText is the interval as the engine receives it.
func (c *Config) IntervalText() string {
	return fmt.Sprint(c.Timer.Interval)
}

// RoundsText is the round count as the engine receives it.
func (c *Config) RoundsText() string {
	return fmt.Sprint(c.Timer.Rounds)
}
