package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rounds/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the rounds app instance.
func Get() *cli.App {
	roundsApp := &cli.App{
		Name: "rounds",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Rounds is an interval timer for the command-line. A run is a fixed number 
		of equal rounds, and a chime marks the end of each one. Runs can be paused, 
		resumed and stopped, and are recorded in a local history.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:  "history",
				Usage: "List recorded runs, or clear them with --clear",
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					jsonFlag,
					clearFlag,
					yesFlag,
				},
				Action: historyAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the available chime sounds",
				Action: soundsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			intervalFlag,
			roundsFlag,
			soundFlag,
			volumeFlag,
			disableNotificationFlag,
			cmdFlag,
			noHistoryFlag,
			autoStartFlag,
			headlessFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return roundsApp
}
