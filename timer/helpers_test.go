package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/rounds/internal/config"
	"github.com/ayoisaiah/rounds/internal/models"
)

func init() {
	pterm.DisableColor()
}

// memDB is an in-memory store.DB.
type memDB struct {
	mu   sync.Mutex
	runs []models.Run
}

func (m *memDB) SaveRun(run *models.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = append(m.runs, *run)

	return nil
}

func (m *memDB) GetRuns(_, _ time.Time) ([]models.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Run(nil), m.runs...), nil
}

func (m *memDB) DeleteRuns(_ []models.Run) error { return nil }

func (m *memDB) DeleteAllRuns() error { return nil }

func (m *memDB) Close() error { return nil }

type countingChimer struct {
	mu    sync.Mutex
	count int
}

func (c *countingChimer) Play() {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
}

func (c *countingChimer) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count
}

func testConfig(interval, rounds int) *config.Config {
	return &config.Config{
		Timer: config.TimerConfig{
			Interval: interval,
			Rounds:   rounds,
		},
		Sound: config.SoundConfig{
			Chime:  config.SoundOff,
			Volume: 80,
		},
		Display: config.DisplayConfig{
			Color:     "#12EAEA",
			DarkTheme: true,
		},
		Settings: config.SettingsConfig{
			History: true,
		},
	}
}

// fixedClock returns a clock that advances by one second per call.
func fixedClock(t *testing.T) func() time.Time {
	t.Helper()

	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}
