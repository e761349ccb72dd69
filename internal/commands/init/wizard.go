// Package initcmd writes a starter configuration file.
package initcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/scrub/internal/core/config"
	"github.com/hay-kot/scrub/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // never prompt
	Force      bool // overwrite existing config

	// Confirm asks a yes/no question. Defaults to a huh prompt.
	Confirm func(title, description string) (bool, error)
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	if opts.Confirm == nil {
		opts.Confirm = confirm
	}
	return &Wizard{opts: opts}
}

// Run writes the default configuration to the configured path.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		overwrite, err := w.opts.Confirm(
			"Config file already exists",
			w.opts.ConfigPath+"\nOverwrite? (a backup will be created)",
		)
		if errors.Is(err, huh.ErrUserAborted) {
			overwrite = false
		} else if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return err
	}
	if backupPath != "" {
		p.Infof("Backed up existing config to %s", backupPath)
	}

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(w.opts.ConfigPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(w.opts.ConfigPath, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	p.Success("Wrote "+w.opts.ConfigPath, "edit patterns, include, and exclude to fit your project")
	p.Line("Next: scrub config validate, then scrub clean --dry-run")
	return nil
}

func confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&ok).
		Run()
	return ok, err
}
