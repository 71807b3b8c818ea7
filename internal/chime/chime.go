// Package chime plays the short sound that marks the end of a round.
package chime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Options configures a Player.
type Options struct {
	Logger *slog.Logger
	// Sound is a preset name, a file name in Dir, or a path. "off" or an
	// empty string disables playback.
	Sound string
	Dir   string
	// Volume ranges from 0 (silent) to 100 (unchanged).
	Volume int
}

// Player plays a preloaded chime. A Player that failed to load its sound or
// open the audio device stays silent.
type Player struct {
	logger *slog.Logger
	buffer *beep.Buffer
	volume float64
	silent bool
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		bufferSize := sampleRate.N(time.Second / 10)
		if err := speaker.Init(sampleRate, bufferSize); err != nil {
			speakerErr = errSpeakerInit.Wrap(err)
		}
	})

	return speakerErr
}

// New prepares a Player. It never fails: problems are logged and the
// returned Player does nothing.
func New(opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Player{
		logger: logger,
		volume: volumeLevel(opts.Volume),
		silent: opts.Volume <= 0,
	}

	if opts.Sound == "" || opts.Sound == "off" {
		return p
	}

	buf, err := load(opts.Sound, opts.Dir)
	if err != nil {
		logger.Warn("chime disabled",
			slog.String("sound", opts.Sound),
			slog.Any("error", err),
		)

		return p
	}

	if err := initSpeaker(); err != nil {
		logger.Warn("chime disabled", slog.Any("error", err))
		return p
	}

	p.buffer = buf

	logger.Debug("chime ready",
		slog.String("sound", opts.Sound),
		slog.Int("volume", opts.Volume),
		slog.Duration("length", sampleRate.D(buf.Len())),
	)

	return p
}

// Play starts the chime and returns immediately.
func (p *Player) Play() {
	if p.buffer == nil || p.silent {
		return
	}

	speaker.Play(p.streamer())
}

func (p *Player) streamer() beep.Streamer {
	return &effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   p.silent,
	}
}

// Close stops any chime still playing.
func (p *Player) Close() {
	if p.buffer == nil {
		return
	}

	speaker.Clear()
}

// volumeLevel maps a 0-100 percentage onto the exponent used by
// effects.Volume with base 2. 100 leaves the signal unchanged and every 20
// points halves it.
func volumeLevel(percent int) float64 {
	percent = min(max(percent, 0), 100)

	return float64(percent-100) / 20
}
