// Package ui renders command results for people and for scripts.
//
// Terminal output is styled with lipgloss, text output is the same layout
// without styling and JSON output is meant for scripts.
package ui

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/mineflake/pkg/core"
	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderApplyResult renders the outcome of an apply run.
	RenderApplyResult(result *core.ApplyResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Format names an output format accepted by --format.
type Format string

const (
	// FormatAuto picks FormatTerminal or FormatText for the output writer
	FormatAuto Format = "auto"
	// FormatTerminal styles output with lipgloss
	FormatTerminal Format = "term"
	// FormatText is the terminal layout without styling
	FormatText Format = "text"
	// FormatJSON writes one JSON object per result
	FormatJSON Format = "json"
)

// Formats lists the accepted formats in the order shown to users.
var Formats = []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON}

// ParseFormat maps a --format value to a Format.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if format == "" {
		return FormatAuto, nil
	}
	if !slices.Contains(Formats, format) {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format: %s", name).
			WithDetail("format", name)
	}
	return format, nil
}

// Resolve turns FormatAuto into a concrete format for w. Output is styled
// only when termenv reports colors for w, which takes NO_COLOR,
// CLICOLOR_FORCE and whether w is a terminal into account.
func Resolve(format Format, w io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if termenv.NewOutput(w).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// NewRenderer creates a renderer writing format to output. FormatAuto is
// resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return &textRenderer{w: output, styles: DefaultStyles(lipgloss.NewRenderer(output))}, nil
	case FormatText:
		return &textRenderer{w: output}, nil
	case FormatJSON:
		return &jsonRenderer{w: output}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format).
			WithDetail("format", string(format))
	}
}

// textRenderer writes human readable output. With no styles it is plain
// text.
type textRenderer struct {
	w      io.Writer
	styles Styles
}

func (t *textRenderer) style(name, s string) string {
	if t.styles == nil {
		return s
	}
	return t.styles.Get(name).Render(s)
}

func (t *textRenderer) RenderApplyResult(result *core.ApplyResult) error {
	header := fmt.Sprintf("Applied %s server to %s", result.Server, result.Directory)
	if result.DryRun {
		header = fmt.Sprintf("%s %s server in %s",
			t.style("DryRun", "DRY RUN:"), result.Server, result.Directory)
	}
	if _, err := fmt.Fprintln(t.w, t.style("Header", header)); err != nil {
		return err
	}

	for _, p := range result.Written {
		line := fmt.Sprintf("  %s %s", t.style("Written", "+"), t.style("Path", relative(result.Directory, p)))
		if _, err := fmt.Fprintln(t.w, line); err != nil {
			return err
		}
	}
	for _, p := range result.Removed {
		line := fmt.Sprintf("  %s %s", t.style("Removed", "-"), t.style("Path", relative(result.Directory, p)))
		if _, err := fmt.Fprintln(t.w, line); err != nil {
			return err
		}
	}

	verb := "removed"
	if result.DryRun {
		verb = "to remove"
	}
	summary := fmt.Sprintf("%d written, %d %s", len(result.Written), len(result.Removed), verb)
	_, err := fmt.Fprintln(t.w, t.style("Muted", summary))
	return err
}

func (t *textRenderer) RenderError(err error) error {
	if _, werr := fmt.Fprintln(t.w, t.style("Error", "Error: "+err.Error())); werr != nil {
		return werr
	}

	details := errors.GetErrorDetails(err)
	for _, key := range slices.Sorted(maps.Keys(details)) {
		line := fmt.Sprintf("  %s: %v", key, details[key])
		if _, werr := fmt.Fprintln(t.w, t.style("Muted", line)); werr != nil {
			return werr
		}
	}
	return nil
}

func (t *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(t.w, msg)
	return err
}

// relative shortens path for display when it lies below dir.
func relative(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}
