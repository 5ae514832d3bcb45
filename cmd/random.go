package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeqcho/pvc-playground/internal/domain"
	m "github.com/jeqcho/pvc-playground/internal/model"
)

var randomAlternativesFlag int
var randomVotersFlag int
var randomSeedFlag int64
var randomOutputFlag string

// randomCmd represents the random command.
var randomCmd = newRandomCmd()

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random preference profile",
		Long: `Generate a profile with uniformly shuffled rankings over the first m
letters of the alphabet. The same --seed always reproduces the same profile;
with --output the profile is also written as a YAML document.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Random(cmd.Context(), domain.RandomArgs{
				Alternatives: randomAlternativesFlag,
				Voters:       randomVotersFlag,
				Seed:         randomSeedFlag,
				Output:       m.Path(randomOutputFlag),
			})
		},
	}

	cmd.Flags().IntVarP(&randomAlternativesFlag, "alternatives", "m", 3, "number of alternatives")
	cmd.Flags().IntVarP(&randomVotersFlag, "voters", "n", 3, "number of voters")
	cmd.Flags().Int64Var(&randomSeedFlag, "seed", 0, "random seed (0 draws from the clock)")
	cmd.Flags().StringVarP(&randomOutputFlag, "output", "o", "", "write the profile to this path")

	return cmd
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
