package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/hay-kot/scrub/internal/commands/init"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a starter configuration file",
		UsageText: "scrub init [options]",
		Description: `Writes the default configuration to the --config path
(~/.config/scrub/config.yaml unless overridden). The defaults contain the
built-in patterns, so they are a starting point for project-specific rules.

An existing file is backed up to <path>.bak before it is replaced.
Use --force to overwrite without asking.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "never prompt; fail if the config exists and --force is not set",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	return initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		Yes:        cmd.yes,
		Force:      cmd.force,
	}).Run(ctx)
}
