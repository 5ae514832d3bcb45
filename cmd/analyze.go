package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeqcho/pvc-playground/internal/domain"
)

const analyzeLongDescription = `Compute the proportional veto core of a profile.

Every alternative is checked for a vetoing coalition; the ones no coalition
can veto form the core. The classical successive-elimination result is shown
as an overlay only: the two procedures are not guaranteed to agree, and the
veto-based core is the authoritative one.

` + profileFileHelp

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [profile.yaml]",
		Short: "Compute the proportional veto core of a profile",
		Long:  analyzeLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Profile: profileArg(args),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
