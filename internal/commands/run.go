package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/scrub/internal/core/scan"
	"github.com/hay-kot/scrub/internal/printer"
	"github.com/hay-kot/scrub/internal/scrub"
	"github.com/hay-kot/scrub/pkg/iojson"
)

// ErrNotInteractive is returned when confirmation is required but stdin is
// not a terminal.
var ErrNotInteractive = errors.New("stdin is not a terminal; pass --yes to run without confirmation")

// runCmd holds the flags and behavior shared by clean and strip.
type runCmd struct {
	flags *Flags
	mode  scrub.Mode

	yes     bool
	dryRun  bool
	json    bool
	backup  bool
	include []string
	exclude []string

	// swapped in tests
	isTerminal func() bool
	confirm    func(title, description string) (bool, error)
}

func newRunCmd(flags *Flags, mode scrub.Mode) *runCmd {
	return &runCmd{
		flags:      flags,
		mode:       mode,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		confirm:    confirmPrompt,
	}
}

func (cmd *runCmd) cliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "skip the confirmation prompt",
			Destination: &cmd.yes,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"n"},
			Usage:       "show what would change without writing files",
			Destination: &cmd.dryRun,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "write the run summary as JSON",
			Destination: &cmd.json,
		},
		&cli.BoolFlag{
			Name:        "backup",
			Usage:       "copy each changed file to <file>.bak before writing",
			Destination: &cmd.backup,
		},
		&cli.StringSliceFlag{
			Name:        "include",
			Usage:       "glob of files to process, relative to the directory (overrides config)",
			Destination: &cmd.include,
		},
		&cli.StringSliceFlag{
			Name:        "exclude",
			Usage:       "glob of files to skip, relative to the directory (overrides config)",
			Destination: &cmd.exclude,
		},
	}
}

func (cmd *runCmd) run(ctx context.Context, c *cli.Command) error {
	summary, err := cmd.execute(ctx, c)
	if err == nil || !cmd.json {
		return err
	}

	var data map[string]any
	if summary != nil {
		data = map[string]any{"total": summary.Total, "succeeded": summary.Succeeded, "failed": summary.Failed}
	}
	if werr := iojson.WriteError(c.Root().ErrWriter, err.Error(), data); werr != nil {
		return werr
	}
	return cli.Exit("", 1)
}

// execute performs the run. The summary is non-nil once files were processed,
// including when the run was interrupted.
func (cmd *runCmd) execute(ctx context.Context, c *cli.Command) (*scrub.Summary, error) {
	p := printer.Ctx(ctx)
	cfg := cmd.flags.Config

	dir := c.Args().First()
	if dir == "" {
		dir = cfg.Root
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	if err := checkDir(root); err != nil {
		return nil, err
	}

	include, exclude := cfg.Include, cfg.Exclude
	if len(cmd.include) > 0 {
		include = cmd.include
	}
	if len(cmd.exclude) > 0 {
		exclude = cmd.exclude
	}
	if err := scan.ValidatePatterns(append(append([]string{}, include...), exclude...)); err != nil {
		return nil, err
	}

	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	fs := osfs.New(root)
	svc := scrub.NewService(
		fs,
		scan.New(fs, include, exclude),
		rules,
		cfg.ImportPrefix,
		log.With().Str("component", "scrub").Logger(),
	)

	files, err := svc.Files()
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	if !cmd.json {
		p.Title(fmt.Sprintf("scrub %s: %s", cmd.mode, root))
	}

	if len(files) == 0 {
		if cmd.json {
			return nil, iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, scrub.Summary{Mode: cmd.mode, DryRun: cmd.dryRun})
		}
		p.Infof("No matching files found")
		return nil, nil
	}

	ok, err := cmd.approve(root, len(files))
	if err != nil {
		return nil, err
	}
	if !ok {
		p.Infof("Cancelled; no files were changed")
		return nil, nil
	}

	opts := scrub.Options{
		Mode:   cmd.mode,
		DryRun: cmd.dryRun,
		Backup: cmd.backup || cfg.Backup,
	}
	if !cmd.json {
		opts.OnFile = func(res scrub.FileResult) { printResult(p, res) }
	}

	// An interrupted run still reports what it got through.
	summary, runErr := svc.Run(ctx, opts)

	if cmd.json {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, summary); err != nil {
			return &summary, err
		}
	} else {
		printSummary(p, summary)
	}

	if runErr != nil {
		return &summary, runErr
	}
	return &summary, summary.Err()
}

// approve asks the user before a destructive run.
func (cmd *runCmd) approve(root string, count int) (bool, error) {
	if cmd.yes || cmd.dryRun {
		return true, nil
	}
	if !cmd.isTerminal() {
		return false, ErrNotInteractive
	}

	ok, err := cmd.confirm(
		fmt.Sprintf("Rewrite %d file(s) in place?", count),
		root+"\nFiles are modified without a backup unless --backup is set.",
	)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return ok, nil
}

func confirmPrompt(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func printResult(p *printer.Printer, res scrub.FileResult) {
	switch {
	case !res.OK:
		p.Errorf("%s: %s", res.Path, res.Error)
	case res.Changed:
		p.Success(res.Path, fmt.Sprintf("%d comment(s), %d import(s), %s removed",
			len(res.Removals), res.ImportsDropped, humanize.Bytes(uint64(max(res.BytesBefore-res.BytesAfter, 0)))))
		if res.Diff != "" {
			p.Diff(res.Diff)
		}
	default:
		p.Line("%s unchanged", res.Path)
	}
}

func printSummary(p *printer.Printer, s scrub.Summary) {
	verb := "cleaned"
	if s.DryRun {
		verb = "checked"
	}

	if processed := len(s.Files); processed < s.Total {
		p.Warnf("Interrupted after %d of %d files", processed, s.Total)
	}
	p.Successf("Successfully %s %d/%d files", verb, s.Succeeded, s.Total)
	if s.Changed > 0 {
		p.Infof("%d file(s) changed, %s removed", s.Changed, humanize.Bytes(uint64(s.BytesRemoved)))
	}
	if s.Failed > 0 {
		p.Warnf("%d file(s) failed; see errors above", s.Failed)
	}
}
