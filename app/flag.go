package app

import "github.com/urfave/cli/v2"

var (
	intervalFlag = &cli.UintFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "Length of each round in seconds (default: 60)",
	}

	roundsFlag = &cli.UintFlag{
		Name:    "rounds",
		Aliases: []string{"r"},
		Usage:   "Number of rounds in a run (default: 20)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Chime played at the end of each round. Built-in options: beep, bell, chime.\n\t\t\t\tAccepts a file in the sounds directory or a path. Disable by setting to 'off'",
	}

	volumeFlag = &cli.IntFlag{
		Name:  "volume",
		Usage: "Chime volume from 0 to 100 (default: 80)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "no-notify",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a run is completed",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each completed run",
	}

	noHistoryFlag = &cli.BoolFlag{
		Name:  "no-history",
		Usage: "Do not record runs in the history",
	}

	autoStartFlag = &cli.BoolFlag{
		Name:    "auto-start",
		Aliases: []string{"a"},
		Usage:   "Start the first run immediately",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Read commands (start, pause, resume, stop, interval <secs>, rounds <n>, quit)\n\t\t\t\tfrom standard input instead of showing the interactive timer",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Write debug information to the log file",
		EnvVars: []string{"ROUNDS_DEBUG"},
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include runs started after this time (e.g. '2 days ago', '2024-03-01')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include runs started before this time (default: now)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the runs as JSON",
	}

	clearFlag = &cli.BoolFlag{
		Name:  "clear",
		Usage: "Delete the matching runs from the history",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt when clearing the history",
	}
)
