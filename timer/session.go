package timer

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/rounds/internal/config"
	"github.com/ayoisaiah/rounds/internal/engine"
	"github.com/ayoisaiah/rounds/internal/models"
	"github.com/ayoisaiah/rounds/internal/timeutil"
	"github.com/ayoisaiah/rounds/store"
)

// session tracks the run in progress and carries out what happens around
// it: history, status file, notification and the user command. Its observe
// method must only be called from the goroutine that owns the engine.
type session struct {
	opts       *config.Config
	db         store.DB
	logger     *slog.Logger
	now        func() time.Time
	notify     func(title, message string) error
	exec       func(name string, args []string, env []string) error
	statusPath string

	startTime time.Time
	wg        sync.WaitGroup
}

func newSession(
	opts *config.Config,
	db store.DB,
	logger *slog.Logger,
	statusPath string,
) *session {
	if logger == nil {
		logger = slog.Default()
	}

	return &session{
		opts:       opts,
		db:         db,
		logger:     logger,
		now:        time.Now,
		notify:     sendNotification,
		exec:       runCommand,
		statusPath: statusPath,
	}
}

// observe reacts to a single transition.
func (s *session) observe(prev, next engine.State, ev engine.Event) {
	switch {
	case engine.Completed(prev, next):
		s.finish(next, true)
	case engine.Abandoned(prev, next, ev):
		s.finish(prev, false)
	}

	if _, ok := ev.(engine.Start); ok {
		s.startTime = s.now()

		s.logger.Info("run started",
			slog.Uint64("interval_secs", next.Config.IntervalSecs),
			slog.Uint64("rounds", next.Config.NumRounds),
		)
	}

	if prev != next {
		s.writeStatus(next)
	}
}

// finish records a run that has just ended. An abandoned run reports the
// state it was in before the event that ended it.
func (s *session) finish(st engine.State, completed bool) {
	run := &models.Run{
		StartTime:    s.startTime,
		EndTime:      s.now(),
		IntervalSecs: st.Config.IntervalSecs,
		NumRounds:    st.Config.NumRounds,
		ElapsedSecs:  st.Run.ElapsedSecs,
		RoundReached: st.Run.RoundNumber,
		Completed:    completed,
	}

	s.logger.Info("run ended",
		slog.Bool("completed", completed),
		slog.Uint64("elapsed_secs", run.ElapsedSecs),
		slog.Uint64("round", run.RoundReached),
	)

	s.record(run)

	if !completed {
		return
	}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		s.sendNotification(run)
		s.runCmd(run)
	}()
}

// record saves the run in the history. Runs that never ticked are not
// worth keeping.
func (s *session) record(run *models.Run) {
	if s.db == nil || !s.opts.Settings.History || run.ElapsedSecs == 0 ||
		run.StartTime.IsZero() {
		return
	}

	if err := s.db.SaveRun(run); err != nil {
		s.logger.Error("saving run failed", slog.Any("error", err))
	}
}

func (s *session) sendNotification(run *models.Run) {
	if !s.opts.Notifications.Enabled {
		return
	}

	msg := fmt.Sprintf(
		"%d rounds of %s done in %s",
		run.NumRounds,
		timeutil.FormatClock(run.IntervalSecs),
		timeutil.FormatClock(run.ElapsedSecs),
	)

	if err := s.notify("Workout complete", msg); err != nil {
		s.logger.Warn("unable to display notification", slog.Any("error", err))
	}
}

// runCmd executes the configured command after a completed run. Details of
// the run are passed through the environment.
func (s *session) runCmd(run *models.Run) {
	if s.opts.Settings.Cmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(s.opts.Settings.Cmd)
	if err != nil {
		s.logger.Error("unable to parse cmd option",
			slog.String("cmd", s.opts.Settings.Cmd),
			slog.Any("error", errInvalidCmd.Wrap(err)),
		)

		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	env := []string{
		"ROUNDS_INTERVAL_SECS=" + strconv.FormatUint(run.IntervalSecs, 10),
		"ROUNDS_NUM_ROUNDS=" + strconv.FormatUint(run.NumRounds, 10),
		"ROUNDS_ELAPSED_SECS=" + strconv.FormatUint(run.ElapsedSecs, 10),
	}

	err = s.exec(cmdSlice[0], cmdSlice[1:], env)
	if err != nil {
		s.logger.Error("cmd failed",
			slog.String("cmd", s.opts.Settings.Cmd),
			slog.Any("error", err),
		)
	}
}

func (s *session) writeStatus(st engine.State) {
	if s.statusPath == "" {
		return
	}

	err := writeStatusFile(s.statusPath, Status{
		Snapshot:  st.Snapshot(),
		UpdatedAt: s.now(),
	})
	if err != nil {
		s.logger.Debug("writing status file failed", slog.Any("error", err))
	}
}

// close waits for pending notifications and commands, and removes the
// status file.
func (s *session) close() {
	s.wg.Wait()

	if s.statusPath != "" {
		_ = os.Remove(s.statusPath)
	}
}

func sendNotification(title, message string) error {
	return beeep.Notify(title, message, "")
}

func runCommand(name string, args, env []string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...)

	return cmd.Run()
}
