package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// Cell styles for the analysis grid and its legend.
var (
	coreStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	sequentialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	vetoedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const (
	coreLabel       = "in the proportional veto core"
	sequentialLabel = "retained by successive elimination only"
	vetoedLabel     = "vetoed"
)

// SimpleUI implements UI using cobra Command's output, tablewriter grids and
// a lipgloss color legend.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayProfile renders the preference grid, one column per voter.
func (s *SimpleUI) DisplayProfile(ctx context.Context, profile m.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderProfileTable(profile, nil))

	return nil
}

// DisplayAnalysis renders the colored grid, the legend and the veto table.
func (s *SimpleUI) DisplayAnalysis(ctx context.Context, analysis m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderProfileTable(analysis.Profile, styleFor(analysis)))
	s.printf("\n%s\n", renderLegend())
	s.printf("\n%s", renderVetoTable(analysis))
	s.printf("\nCore: %s\n", formatAlternatives(analysis.Core))
	s.printf("Successive elimination (overlay only): %s\n", formatAlternatives(analysis.Sequential))

	return nil
}

// DisplayVeto renders the search outcome for a single target.
func (s *SimpleUI) DisplayVeto(ctx context.Context, profile m.Profile, result m.VetoResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !result.Found() {
		s.printf("No coalition can veto %q: it is in the proportional veto core.\n", result.Target)
		return nil
	}

	s.printf("Coalition %s vetoes %q\n", result.Coalition, result.Target)
	s.printf("Unanimously preferred (B): %s\n", formatAlternatives(result.Preferred))
	s.printf("Voting power |T|/n: %.3f\n", result.VotingPower)
	s.printf("Veto size 1-|B|/m: %.3f\n", result.VetoShare)
	if result.Boundary {
		s.printf("The coalition meets the veto threshold exactly.\n")
	}

	return nil
}

// DisplayValidation reports per-voter diagnostics; err nil means valid.
func (s *SimpleUI) DisplayValidation(ctx context.Context, profile m.Profile, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err == nil {
		s.printf("Profile is valid: %d alternatives, %d voters.\n", profile.M(), profile.N())
		return nil
	}

	var rankingErr *m.RankingError
	if errors.As(err, &rankingErr) {
		s.printf("Invalid profile: voter %d: %v\n", rankingErr.Voter, rankingErr.Err)
		return nil
	}

	s.printf("Invalid profile: %v\n", err)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// styleFor maps each alternative to its legend style for an analysis.
func styleFor(analysis m.Analysis) func(m.Alternative) lipgloss.Style {
	return func(alt m.Alternative) lipgloss.Style {
		switch {
		case analysis.InCore(alt):
			return coreStyle
		case analysis.InSequential(alt):
			return sequentialStyle
		default:
			return vetoedStyle
		}
	}
}

// renderProfileTable draws the m x n preference grid, row i holding the
// i-th-ranked alternative of every voter. style may be nil for no coloring.
func renderProfileTable(profile m.Profile, style func(m.Alternative) lipgloss.Style) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)

	header := make([]string, 0, profile.N()+1)
	header = append(header, "Rank")

	for v := 0; v < profile.N(); v++ {
		header = append(header, "Voter "+strconv.Itoa(v))
	}

	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for rank := 0; rank < profile.M(); rank++ {
		row := make([]string, 0, profile.N()+1)
		row = append(row, strconv.Itoa(rank+1))

		for _, ranking := range profile.Rankings {
			cell := ""
			if rank < len(ranking) {
				cell = string(ranking[rank])
				if style != nil {
					cell = style(ranking[rank]).Render(cell)
				}
			}

			row = append(row, cell)
		}

		table.Append(row)
	}

	table.Render()

	return buffer.String()
}

// renderLegend draws one colored swatch line per membership class.
func renderLegend() string {
	lines := []string{
		coreStyle.Render("■") + " " + coreLabel,
		sequentialStyle.Render("■") + " " + sequentialLabel,
		vetoedStyle.Render("■") + " " + vetoedLabel,
	}

	return strings.Join(lines, "\n")
}

// renderVetoTable draws one row per alternative with its search outcome.
func renderVetoTable(analysis m.Analysis) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Alternative", "In Core", "Coalition", "B", "Power |T|/n", "Veto 1-|B|/m"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	inCore := 0

	for _, alt := range analysis.Profile.Alternatives {
		result := analysis.Vetoes[alt]

		if !result.Found() {
			inCore++
			table.Append([]string{string(alt), "yes", "-", "-", "-", "-"})

			continue
		}

		table.Append([]string{
			string(alt),
			"no",
			result.Coalition.String(),
			formatAlternatives(result.Preferred),
			fmt.Sprintf("%.3f", result.VotingPower),
			fmt.Sprintf("%.3f", result.VetoShare),
		})
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d/%d", inCore, analysis.Profile.M()),
		"", "", "",
		analysis.Elapsed.String(),
	})

	table.Render()

	return buffer.String()
}

func formatAlternatives(alts []m.Alternative) string {
	if len(alts) == 0 {
		return "{}"
	}

	parts := make([]string, len(alts))
	for i, alt := range alts {
		parts[i] = string(alt)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
