// Package printer writes styled, human-oriented command output. Structured
// logs go through zerolog; this package is for what the user reads.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ctxKey struct{}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")).Bold(true)
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	delStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

// Printer writes styled messages to an output stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New creates a Printer writing normal output to out and errors to errOut.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, err: errOut}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stdout/stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Title prints a bold heading followed by an underline.
func (p *Printer) Title(title string) {
	fmt.Fprintln(p.out, titleStyle.Render(title))
	fmt.Fprintln(p.out, mutedStyle.Render(strings.Repeat("=", lipgloss.Width(title))))
}

// Infof prints an informational message.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.out, infoStyle.Render("•")+" "+fmt.Sprintf(format, args...))
}

// Successf prints a success message.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, successStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

// Success prints a success message with a muted detail line.
func (p *Printer) Success(msg, detail string) {
	p.Successf("%s", msg)
	if detail != "" {
		fmt.Fprintln(p.out, "  "+mutedStyle.Render(detail))
	}
}

// Warnf prints a warning message.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.out, warnStyle.Render("!")+" "+fmt.Sprintf(format, args...))
}

// Errorf prints an error message to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.err, errorStyle.Render("✗")+" "+fmt.Sprintf(format, args...))
}

// Line prints an indented, muted line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintln(p.out, "  "+mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Diff prints a unified-style line diff. Lines starting with "+" or "-" are
// colored; everything else is muted.
func (p *Printer) Diff(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(p.out, addStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(p.out, delStyle.Render(line))
		default:
			fmt.Fprintln(p.out, mutedStyle.Render(line))
		}
	}
}
