package chime

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"
)

// sampleRate is the rate the speaker runs at. Files recorded at other rates
// are resampled on load.
const sampleRate beep.SampleRate = 44100

const resampleQuality = 4

var format = beep.Format{
	SampleRate:  sampleRate,
	NumChannels: 2,
	Precision:   2,
}

var formats = []string{".mp3", ".ogg", ".flac", ".wav"}

type note struct {
	freq float64
	dur  time.Duration
}

// presets are synthesized so that no audio files ship with the binary.
var presets = map[string][]note{
	"chime": {
		{freq: 880, dur: 150 * time.Millisecond},
		{freq: 1318.5, dur: 300 * time.Millisecond},
	},
	"bell": {
		{freq: 659.3, dur: 450 * time.Millisecond},
	},
	"beep": {
		{freq: 1000, dur: 120 * time.Millisecond},
		{freq: 0, dur: 80 * time.Millisecond},
		{freq: 1000, dur: 120 * time.Millisecond},
	},
}

// Presets lists the built-in sounds.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Sort(natural.StringSlice(names))

	return names
}

// IsPreset reports whether name is a built-in sound.
func IsPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// Supported reports whether the file extension of name can be decoded.
func Supported(name string) bool {
	return slices.Contains(formats, strings.ToLower(filepath.Ext(name)))
}

// Locate resolves a sound file name. Bare names are looked up in dir, while
// paths are used as given.
func Locate(name, dir string) string {
	if dir == "" || filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}

	return filepath.Join(dir, name)
}

// Available lists the built-in sounds followed by the supported files in
// dir, in natural order. A missing dir yields only the presets.
func Available(dir string) ([]string, error) {
	sounds := Presets()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sounds, nil
		}

		return nil, err
	}

	var files []string

	for _, entry := range entries {
		if entry.IsDir() || !Supported(entry.Name()) {
			continue
		}

		files = append(files, entry.Name())
	}

	sort.Sort(natural.StringSlice(files))

	return append(sounds, files...), nil
}

// synthesize renders a preset into a buffer.
func synthesize(notes []note) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)

	for _, n := range notes {
		samples := sampleRate.N(n.dur)

		if n.freq == 0 {
			buf.Append(beep.Silence(samples))
			continue
		}

		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}

		buf.Append(beep.Take(samples, tone))
	}

	return buf, nil
}

// decode reads a sound file into a buffer at the speaker's sample rate.
func decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream     beep.StreamSeekCloser
		fileFormat beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, fileFormat, err = vorbis.Decode(f)
	case ".mp3":
		stream, fileFormat, err = mp3.Decode(f)
	case ".flac":
		stream, fileFormat, err = flac.Decode(f)
	case ".wav":
		stream, fileFormat, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat.Fmt(filepath.Base(path))
	}

	if err != nil {
		_ = f.Close()
		return nil, errDecodeFailed.Wrap(err)
	}

	defer stream.Close()

	var s beep.Streamer = stream
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, fileFormat.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)

	if err := stream.Err(); err != nil {
		return nil, errDecodeFailed.Wrap(err)
	}

	return buf, nil
}

// load returns the audio for a preset name or a sound file.
func load(name, dir string) (*beep.Buffer, error) {
	if notes, ok := presets[name]; ok {
		return synthesize(notes)
	}

	if !Supported(name) {
		return nil, errInvalidSoundFormat.Fmt(name)
	}

	return decode(Locate(name, dir))
}
