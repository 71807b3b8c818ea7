package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyInterval             = "timer.interval"
	keyRounds               = "timer.rounds"
	keyChime                = "sound.chime"
	keyVolume               = "sound.volume"
	keyNotificationsEnabled = "notifications.enabled"
	keyColor                = "display.color"
	keyDarkTheme            = "display.dark_theme"
	keyCmd                  = "settings.cmd"
	keyAutoStart            = "settings.auto_start"
	keyHistory              = "settings.history"
)

// WithViperConfig returns an Option that loads configuration from Viper. If
// the file does not exist yet, it is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyInterval, 60)
	v.SetDefault(keyRounds, 20)
	v.SetDefault(keyChime, "chime")
	v.SetDefault(keyVolume, 80)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyColor, "#12EAEA")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyCmd, "")
	v.SetDefault(keyAutoStart, false)
	v.SetDefault(keyHistory, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
