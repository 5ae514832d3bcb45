package controller

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// TUI implements UI with an interactive Bubble Tea pager for large analyses.
// Short output falls back to the plain renderer.
type TUI struct {
	simple *SimpleUI
	cmd    *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		simple: NewSimpleUI(cmd),
		cmd:    cmd,
	}
}

// DisplayProfile renders the preference grid.
func (t *TUI) DisplayProfile(ctx context.Context, profile m.Profile) error {
	return t.simple.DisplayProfile(ctx, profile)
}

// DisplayVeto renders a single search outcome; never worth paging.
func (t *TUI) DisplayVeto(ctx context.Context, profile m.Profile, result m.VetoResult) error {
	return t.simple.DisplayVeto(ctx, profile, result)
}

// DisplayValidation reports per-voter diagnostics.
func (t *TUI) DisplayValidation(ctx context.Context, profile m.Profile, err error) error {
	return t.simple.DisplayValidation(ctx, profile, err)
}

// DisplayAnalysis pages the full report when it exceeds the terminal, and
// just prints it otherwise.
func (t *TUI) DisplayAnalysis(ctx context.Context, analysis m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newAnalysisModel(analysis)

	if !model.needsPagination() {
		return t.simple.DisplayAnalysis(ctx, analysis)
	}

	program := tea.NewProgram(model, tea.WithOutput(t.cmd.OutOrStdout()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run analysis pager: %w", err)
	}

	return nil
}

// analysisModel is the Bubble Tea model paging over the full report lines.
type analysisModel struct {
	lines    []string
	height   int
	width    int
	offset   int
	quitting bool
}

func newAnalysisModel(analysis m.Analysis) analysisModel {
	content := renderProfileTable(analysis.Profile, styleFor(analysis)) +
		"\n" + renderLegend() + "\n\n" +
		renderVetoTable(analysis) +
		"\nCore: " + formatAlternatives(analysis.Core) +
		"\nSuccessive elimination (overlay only): " + formatAlternatives(analysis.Sequential) + "\n"

	return analysisModel{
		lines: strings.Split(content, "\n"),
	}
}

// needsPagination reports whether the report is long enough to justify the
// alternate screen. Terminal height arrives later via WindowSizeMsg, so a
// fixed threshold gates entry.
func (am analysisModel) needsPagination() bool {
	return len(am.lines) > 24
}

func (am analysisModel) Init() tea.Cmd {
	return nil
}

func (am analysisModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		am.height = msg.Height
		am.width = msg.Width

		return am, nil

	case tea.KeyMsg:
		return am.handleKeyPress(msg)
	}

	return am, nil
}

func (am analysisModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		am.quitting = true
		return am, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		am.quitting = true

		return am, tea.Quit

	case "down", "j":
		am.offset = clamp(am.offset+1, 0, am.maxOffset())

		return am, nil

	case "up", "k":
		am.offset = clamp(am.offset-1, 0, am.maxOffset())

		return am, nil

	case "d", "pgdown":
		am.offset = clamp(am.offset+am.pageSize(), 0, am.maxOffset())

		return am, nil

	case "u", "pgup":
		am.offset = clamp(am.offset-am.pageSize(), 0, am.maxOffset())

		return am, nil

	case "g", "home":
		am.offset = 0

		return am, nil

	case "G", "end":
		am.offset = am.maxOffset()

		return am, nil
	}

	return am, nil
}

func (am analysisModel) View() string {
	if am.quitting {
		return ""
	}

	page := am.pageSize()

	end := am.offset + page
	if end > len(am.lines) {
		end = len(am.lines)
	}

	var b strings.Builder

	for _, line := range am.lines[am.offset:end] {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n  %d-%d of %d lines (j/k scroll, q quit)\n", am.offset+1, end, len(am.lines))

	return b.String()
}

func (am analysisModel) pageSize() int {
	// Leave room for the status line.
	if am.height > 3 {
		return am.height - 3
	}

	return 20
}

func (am analysisModel) maxOffset() int {
	max := len(am.lines) - am.pageSize()
	if max < 0 {
		return 0
	}

	return max
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
