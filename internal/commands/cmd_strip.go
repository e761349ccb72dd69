package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/scrub/internal/scrub"
)

type StripCmd struct {
	*runCmd
}

// NewStripCmd creates a new strip command.
func NewStripCmd(flags *Flags) *StripCmd {
	return &StripCmd{runCmd: newRunCmd(flags, scrub.ModeStrip)}
}

// Register adds the strip command to the application.
func (cmd *StripCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "strip",
		Usage:     "Remove every block comment and duplicate imports",
		UsageText: "scrub strip [options] [dir]",
		Description: `Removes all /** */ and /* */ comments regardless of content, collapses
runs of blank lines, trims trailing whitespace, and drops duplicate import
lines. Line comments are kept.

Files are rewritten in place. Use --dry-run to preview the changes.`,
		Flags:  cmd.cliFlags(),
		Action: cmd.run,
	})

	return app
}
