package config

import (
	"errors"
	"os"
	"regexp"

	"github.com/ayoisaiah/rounds/internal/chime"
)

const (
	minInterval = 1
	maxInterval = 86400 // one day

	minRounds = 1
	maxRounds = 10000

	minVolume = 0
	maxVolume = 100
)

// Color format validation.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Timer.Interval < minInterval || c.Timer.Interval > maxInterval {
		return errInvalidInterval.Fmt(minInterval, maxInterval, c.Timer.Interval)
	}

	if c.Timer.Rounds < minRounds || c.Timer.Rounds > maxRounds {
		return errInvalidRounds.Fmt(minRounds, maxRounds, c.Timer.Rounds)
	}

	if c.Sound.Volume < minVolume || c.Sound.Volume > maxVolume {
		return errInvalidVolume.Fmt(minVolume, maxVolume, c.Sound.Volume)
	}

	if !hexColorRegex.MatchString(c.Display.Color) {
		return errInvalidColor.Fmt(c.Display.Color)
	}

	return c.validateSound()
}

// validateSound accepts "off", a built-in preset, or a sound file that
// exists either as given or under the sounds directory.
func (c *Config) validateSound() error {
	name := c.Sound.Chime

	if name == "" || name == SoundOff || chime.IsPreset(name) {
		return nil
	}

	if !chime.Supported(name) {
		return errInvalidSoundFormat.Fmt(name)
	}

	_, err := os.Stat(chime.Locate(name, c.Sound.Dir))
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(name)
	}

	return err
}
