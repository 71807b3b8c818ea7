package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rounds/internal/chime"
	"github.com/ayoisaiah/rounds/internal/config"
	"github.com/ayoisaiah/rounds/internal/osutil"
	"github.com/ayoisaiah/rounds/internal/pathutil"
	"github.com/ayoisaiah/rounds/internal/ui"
	"github.com/ayoisaiah/rounds/store"
	"github.com/ayoisaiah/rounds/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envRoundsNoColor = "ROUNDS_NO_COLOR"
)

var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithSoundsDir(pathutil.SoundsDir()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	if slog.Default().Enabled(ctx.Context, slog.LevelDebug) {
		slog.Debug("loaded config", slog.String("config", spew.Sdump(cfg)))
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// historyAction handles the history command which lists or clears the runs
// started within a time period.
func historyAction(ctx *cli.Context) error {
	since, until, err := historyRange(ctx, time.Now())
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	runs, err := db.GetRuns(since, until)
	if err != nil {
		return err
	}

	if ctx.Bool("clear") {
		confirm := confirmClear
		if ctx.Bool("yes") {
			confirm = nil
		}

		all := !ctx.IsSet("since") && !ctx.IsSet("until")

		return clearRuns(config.Stdout, db, runs, all, confirm)
	}

	if ctx.Bool("json") {
		return writeRunsJSON(config.Stdout, runs)
	}

	listRuns(config.Stdout, runs)

	return nil
}

// soundsAction lists the built-in chimes and the files in the sounds
// directory.
func soundsAction(_ *cli.Context) error {
	sounds, err := chime.Available(pathutil.SoundsDir())
	if err != nil {
		return err
	}

	for _, s := range sounds {
		if chime.IsPreset(s) {
			fmt.Fprintln(config.Stdout, s)
			continue
		}

		fmt.Fprintf(config.Stdout, "%s %s\n", s, ui.Cyan("(custom)"))
	}

	pterm.Info.Printfln("custom sounds are read from %s", pathutil.SoundsDir())

	return nil
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		config.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
	)
}

// defaultAction starts the interactive timer, or the headless one when
// --headless is set.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	dbClient, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer dbClient.Close()

	logger := slog.Default()

	player := chime.New(chime.Options{
		Logger: logger,
		Sound:  cfg.Sound.Chime,
		Dir:    cfg.Sound.Dir,
		Volume: cfg.Sound.Volume,
	})

	defer player.Close()

	opts := []timer.Option{
		timer.WithLogger(logger),
		timer.WithStatusFile(pathutil.StatusFilePath()),
	}

	if !cfg.CLI.Headless {
		return timer.New(cfg, dbClient, player, opts...).Run()
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = timer.RunHeadless(sigCtx, cfg, dbClient, player, config.Stdin, config.Stdout, opts...)
	if errors.Is(err, timer.ErrRunIncomplete) {
		return cli.Exit(err.Error(), int(osutil.ExitIncomplete))
	}

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/rounds/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if ROUNDS_NO_COLOR is set
	if _, exists := os.LookupEnv(envRoundsNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	logger, closer := newLogger(pathutil.LogFilePath(), ctx.Bool("debug"))
	slog.SetDefault(logger)

	logCloser = closer

	slog.InfoContext(ctx.Context, "starting rounds",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting rounds")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
