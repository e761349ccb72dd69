// Package scrub drives a cleanup run over a directory tree: it scans for
// files, rewrites each one, removes duplicate imports, and writes the result
// back in place.
package scrub

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"

	"github.com/hay-kot/scrub/internal/core/classify"
	"github.com/hay-kot/scrub/internal/core/imports"
	"github.com/hay-kot/scrub/internal/core/rewrite"
	"github.com/hay-kot/scrub/internal/core/scan"
)

// ErrInvalidUTF8 is returned for files that are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// BackupSuffix is appended to a file path to form its backup path.
const BackupSuffix = ".bak"

// Mode selects the rewrite strategy.
type Mode string

const (
	// ModeClean removes only flagged comments.
	ModeClean Mode = "clean"
	// ModeStrip removes every block comment.
	ModeStrip Mode = "strip"
)

// Options configures a single run.
type Options struct {
	Mode   Mode
	DryRun bool // compute results and diffs without writing
	Backup bool // copy the original to <path>.bak before overwriting

	// OnFile, when set, is called after each file is processed.
	OnFile func(FileResult)
}

// Service runs cleanups against a filesystem.
type Service struct {
	fs           billy.Filesystem
	scanner      *scan.Scanner
	rules        *classify.Rules
	importPrefix string
	log          zerolog.Logger
}

// NewService creates a Service. rules must be compiled once by the caller
// and is shared, read-only, by every file of the run.
func NewService(fs billy.Filesystem, scanner *scan.Scanner, rules *classify.Rules, importPrefix string, log zerolog.Logger) *Service {
	return &Service{
		fs:           fs,
		scanner:      scanner,
		rules:        rules,
		importPrefix: importPrefix,
		log:          log,
	}
}

// Files returns the paths a run would process.
func (s *Service) Files() ([]string, error) {
	files, err := s.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return files, nil
}

// Run processes every scanned file, one at a time. A failing file is logged,
// recorded in the summary, and skipped; the run goes on with the next file.
// If ctx is cancelled the run stops before the next file and returns the
// partial summary with ctx.Err().
func (s *Service) Run(ctx context.Context, opts Options) (Summary, error) {
	summary := Summary{Mode: opts.Mode, DryRun: opts.DryRun}

	files, err := s.Files()
	if err != nil {
		return summary, err
	}

	s.log.Info().
		Str("mode", string(opts.Mode)).
		Int("files", len(files)).
		Bool("dry_run", opts.DryRun).
		Msg("starting run")

	summary.Total = len(files)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			s.log.Warn().Err(err).Int("processed", len(summary.Files)).Msg("run cancelled")
			return summary, err
		}

		res := s.processFile(path, opts)
		summary.add(res)

		if opts.OnFile != nil {
			opts.OnFile(res)
		}
	}

	s.log.Info().
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Int("changed", summary.Changed).
		Msg("run finished")

	return summary, nil
}

// processFile runs the full pipeline on one file and never returns an error;
// failures are carried in the result.
func (s *Service) processFile(path string, opts Options) FileResult {
	res := FileResult{Path: scan.Rel(path)}
	log := s.log.With().Str("path", res.Path).Logger()

	err := s.cleanFile(path, opts, &res)
	if err != nil {
		res.Error = err.Error()
		log.Error().Err(err).Msg("failed to clean file")
		return res
	}

	res.OK = true
	log.Debug().
		Bool("changed", res.Changed).
		Int("removals", len(res.Removals)).
		Int("imports_dropped", res.ImportsDropped).
		Msg("cleaned file")
	return res
}

func (s *Service) cleanFile(path string, opts Options, res *FileResult) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("decode: %w", ErrInvalidUTF8)
	}

	before := string(data)
	out, err := s.Transform(opts.Mode, before)
	if err != nil {
		return err
	}

	res.BytesBefore = len(before)
	res.BytesAfter = len(out.Content)
	res.Removals = out.Removals
	res.ImportsDropped = out.ImportsDropped
	res.Changed = out.Content != before

	if !res.Changed {
		return nil
	}

	if opts.DryRun {
		res.Diff = LineDiff(res.Path, before, out.Content)
		return nil
	}

	perm := info.Mode().Perm()
	if opts.Backup {
		if err := util.WriteFile(s.fs, path+BackupSuffix, data, perm); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
	}

	// In place and not atomic: a crash mid-write can leave this file truncated.
	if err := util.WriteFile(s.fs, path, []byte(out.Content), perm); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

// Transformed is the in-memory output of the per-file pipeline.
type Transformed struct {
	Content        string
	Removals       []rewrite.Removal
	ImportsDropped int
}

// Transform applies the rewrite selected by mode and then duplicate import
// removal to content.
func (s *Service) Transform(mode Mode, content string) (Transformed, error) {
	var r rewrite.Result
	switch mode {
	case ModeClean:
		r = rewrite.Selective(content, s.rules)
	case ModeStrip:
		r = rewrite.Blanket(content)
	default:
		return Transformed{}, fmt.Errorf("unknown mode %q", mode)
	}

	deduped, dropped := imports.Dedupe(r.Content, s.importPrefix)

	return Transformed{
		Content:        deduped,
		Removals:       r.Removals,
		ImportsDropped: dropped,
	}, nil
}
