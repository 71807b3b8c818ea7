package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rounds/internal/models"
	"github.com/ayoisaiah/rounds/internal/timeutil"
	"github.com/ayoisaiah/rounds/internal/ui"
	"github.com/ayoisaiah/rounds/store"
)

const (
	noRunsMsg  = "No runs found for the specified time range"
	dateFormat = "Jan 02, 2006 03:04 PM"
)

// historyRange resolves --since and --until relative to now. A missing
// --since covers the whole history.
func historyRange(ctx *cli.Context, now time.Time) (since, until time.Time, err error) {
	until = now

	if s := ctx.String("since"); s != "" {
		since, err = timeutil.FromStr(s, now)
		if err != nil {
			return since, until, errInvalidDate.Fmt("since", s)
		}
	}

	if s := ctx.String("until"); s != "" {
		until, err = timeutil.FromStr(s, now)
		if err != nil {
			return since, until, errInvalidDate.Fmt("until", s)
		}
	}

	if !since.IsZero() && until.Before(since) {
		return since, until, errInvalidRange.Fmt(
			since.Format(dateFormat),
			until.Format(dateFormat),
		)
	}

	return since, until, nil
}

// printRunsTable prints a table of runs to w.
func printRunsTable(w io.Writer, runs []models.Run) {
	tableBody := make([][]string, 0, len(runs)+1)

	tableBody = append(tableBody, []string{
		"#", "START DATE", "ROUNDS", "INTERVAL", "TIME", "STATUS",
	})

	for i := range runs {
		run := &runs[i]

		statusText := ui.Green("completed")
		if !run.Completed {
			statusText = ui.Red("abandoned")
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			run.StartTime.Local().Format(dateFormat),
			fmt.Sprintf("%d/%d", run.RoundReached, run.NumRounds),
			timeutil.FormatClock(run.IntervalSecs),
			fmt.Sprintf(
				"%s/%s",
				timeutil.FormatClock(run.ElapsedSecs),
				timeutil.FormatClock(run.TotalSecs()),
			),
			statusText,
		})
	}

	ui.PrintTable(tableBody, w)
}

// summarise describes the totals of a set of runs.
func summarise(runs []models.Run) string {
	var (
		completed int
		secs      uint64
	)

	for i := range runs {
		if runs[i].Completed {
			completed++
		}

		secs += runs[i].ElapsedSecs
	}

	return fmt.Sprintf(
		"%d runs (%d completed), %s of training",
		len(runs),
		completed,
		time.Duration(secs)*time.Second,
	)
}

func writeRunsJSON(w io.Writer, runs []models.Run) error {
	if runs == nil {
		runs = []models.Run{}
	}

	b, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listRuns prints out a table of runs followed by their totals.
func listRuns(w io.Writer, runs []models.Run) {
	if len(runs) == 0 {
		pterm.Info.Println(noRunsMsg)
		return
	}

	printRunsTable(w, runs)

	fmt.Fprintln(w, ui.Highlight(summarise(runs)))
}

// confirmClear asks before runs are deleted permanently.
func confirmClear(n int) (bool, error) {
	var ok bool

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %d runs permanently?", n)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	).Run()

	return ok, err
}

// clearRuns deletes the given runs once confirmed. When all is set the
// whole history is emptied.
func clearRuns(
	w io.Writer,
	db store.DB,
	runs []models.Run,
	all bool,
	confirm func(n int) (bool, error),
) error {
	if len(runs) == 0 {
		pterm.Info.Println(noRunsMsg)
		return nil
	}

	printRunsTable(w, runs)

	if confirm != nil {
		ok, err := confirm(len(runs))
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}

	if all {
		return db.DeleteAllRuns()
	}

	return db.DeleteRuns(runs)
}
