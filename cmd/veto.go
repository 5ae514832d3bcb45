package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeqcho/pvc-playground/internal/domain"
	m "github.com/jeqcho/pvc-playground/internal/model"
)

const vetoLongDescription = `Search for a coalition that vetoes the given alternative.

All non-empty voter subsets are scanned in a fixed order, so repeated runs on
the same profile always report the same coalition. A coalition T vetoes the
target when |T|*(m-1)/n >= m-|B|, B being the set of alternatives every
member of T prefers to the target.

` + profileFileHelp

// vetoCmd represents the veto command.
var vetoCmd = newVetoCmd()

func newVetoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "veto <alternative> [profile.yaml]",
		Short: "Find a coalition that vetoes an alternative",
		Long:  vetoLongDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Veto(cmd.Context(), domain.VetoArgs{
				Profile: profileArg(args[1:]),
				Target:  m.Alternative(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(vetoCmd)
}
