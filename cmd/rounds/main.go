package main

import (
	"os"

	"github.com/ayoisaiah/rounds/app"
	"github.com/ayoisaiah/rounds/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Exit(err)
	}
}
