package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

const (
	docsURL    = "https://github.com/ayoisaiah/rounds/wiki"
	websiteURL = "https://github.com/ayoisaiah/rounds"
)

func section(title, body string) string {
	return fmt.Sprintf("%s\n%s\n\n", pterm.Yellow(title), body)
}

// helpText is the template for the top-level help output.
func helpText() string {
	description := section("DESCRIPTION", "\t\t{{.Usage}}")
	usage := section(
		"USAGE",
		"\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}",
	)
	author := fmt.Sprintf(
		"{{if len .Authors}}%s{{end}}",
		section("AUTHOR", "\t\t{{range .Authors}}{{ . }}{{end}}"),
	)
	version := fmt.Sprintf(
		"{{if .Version}}%s{{end}}",
		section("VERSION", "\t\t{{.Version}}"),
	)
	commands := section(
		"COMMANDS",
		fmt.Sprintf(
			"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
			pterm.Green("{{join .Names `, `}}"),
		),
	)
	options := section(
		"OPTIONS",
		fmt.Sprintf(
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
			pterm.Green("-{{$element}}"),
			pterm.Green("--{{.Name}} {{.DefaultText}}"),
		),
	)
	headless := section(
		"HEADLESS COMMANDS",
		"\t\tstart | pause | resume | stop | interval <secs> | rounds <n> | quit",
	)
	docs := section("DOCUMENTATION", "\t\t"+docsURL)
	website := fmt.Sprintf("%s\n\t\t%s\n", pterm.Yellow("WEBSITE"), websiteURL)

	return description + usage + author + version + commands + options + headless + docs + website
}
