package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/scrub/internal/scrub"
)

type CleanCmd struct {
	*runCmd
}

// NewCleanCmd creates a new clean command.
func NewCleanCmd(flags *Flags) *CleanCmd {
	return &CleanCmd{runCmd: newRunCmd(flags, scrub.ModeClean)}
}

// Register adds the clean command to the application.
func (cmd *CleanCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clean",
		Usage:     "Remove flagged comments and duplicate imports",
		UsageText: "scrub clean [options] [dir]",
		Description: `Removes comments that match the configured patterns: informal wording,
TODO markers, and short generic doc lines. A block comment containing
informal wording is removed as a whole; other blocks are kept verbatim.
Duplicate import lines are dropped and runs of blank lines are merged.

Files are rewritten in place. Use --dry-run to preview the changes.`,
		Flags:  cmd.cliFlags(),
		Action: cmd.run,
	})

	return app
}
