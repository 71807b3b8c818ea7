package chime

import "github.com/ayoisaiah/rounds/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errDecodeFailed = &apperr.Error{
		Message: "unable to decode sound file",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise the audio device",
	}
)
