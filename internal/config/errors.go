package config

import "github.com/ayoisaiah/rounds/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidInterval = &apperr.Error{
		Message: "interval must be between %d and %d seconds, got %d",
	}

	errInvalidRounds = &apperr.Error{
		Message: "rounds must be between %d and %d, got %d",
	}

	errInvalidVolume = &apperr.Error{
		Message: "volume must be between %d and %d, got %d",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown chime sound: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidColor = &apperr.Error{
		Message: "display color must be a valid hex color code (e.g. #FF0000), got %s",
	}
)
