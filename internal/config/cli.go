package config

import (
	"github.com/urfave/cli/v2"
)

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags given explicitly override the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		if ctx.IsSet("interval") {
			c.Timer.Interval = int(ctx.Uint("interval"))
		}

		if ctx.IsSet("rounds") {
			c.Timer.Rounds = int(ctx.Uint("rounds"))
		}

		applyCLISound(c, ctx)

		if ctx.IsSet("cmd") {
			c.Settings.Cmd = ctx.String("cmd")
		}

		if ctx.Bool("no-notify") {
			c.Notifications.Enabled = false
		}

		if ctx.Bool("no-history") {
			c.Settings.History = false
		}

		if ctx.IsSet("auto-start") {
			c.Settings.AutoStart = ctx.Bool("auto-start")
		}

		c.CLI.Headless = ctx.Bool("headless")
		c.CLI.Debug = ctx.Bool("debug")

		return nil
	}
}

// applyCLISound handles sound-related CLI options.
func applyCLISound(c *Config, ctx *cli.Context) {
	if ctx.IsSet("sound") {
		c.Sound.Chime = ctx.String("sound")
	}

	if ctx.IsSet("volume") {
		c.Sound.Volume = ctx.Int("volume")
	}
}
