// Package controller provides output adapters for displaying veto-core
// analysis results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// UI defines the interface for presenting profiles and analysis results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayProfile renders the preference grid, one column per voter.
	DisplayProfile(ctx context.Context, profile m.Profile) error
	// DisplayAnalysis renders the colored grid, the legend and the
	// per-alternative veto table for a full analysis.
	DisplayAnalysis(ctx context.Context, analysis m.Analysis) error
	// DisplayVeto renders the search outcome for a single target.
	DisplayVeto(ctx context.Context, profile m.Profile, result m.VetoResult) error
	// DisplayValidation reports per-voter diagnostics; err nil means valid.
	DisplayValidation(ctx context.Context, profile m.Profile, err error) error
}

// NewUI selects the UI implementation: the interactive pager when attached
// to a terminal, plain text otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
