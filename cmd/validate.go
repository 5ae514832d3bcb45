package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeqcho/pvc-playground/internal/domain"
)

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile.yaml]",
		Short: "Check that every voter's ranking is a permutation of the alternatives",
		Long: `Validate a profile without computing anything.

Each voter's ranking is checked independently, so the first offending voter
is reported with the reason. The command exits non-zero for invalid profiles.

` + profileFileHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Validate(cmd.Context(), domain.ValidateArgs{
				Profile: profileArg(args),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
