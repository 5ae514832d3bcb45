// Package cmd provides the root command and CLI setup for pvc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jeqcho/pvc-playground/internal/adapter"
	"github.com/jeqcho/pvc-playground/internal/controller"
	"github.com/jeqcho/pvc-playground/internal/domain"
	m "github.com/jeqcho/pvc-playground/internal/model"
)

var profileStore adapter.ProfileStore
var profileSource adapter.ProfileSource
var analyzer domain.Analyzer
var workflow domain.Workflow
var ui controller.UI

// profilePathFlag is a root-level flag shared by commands that read a profile.
var profilePathFlag string

// tuiFlag opens the interactive pager for large analyses.
var tuiFlag bool

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies. Anything that depends on a flag value
	// is wired again in the root PersistentPreRunE: flags only reach viper
	// once argv has been parsed.
	profileStore = adapter.NewYAMLProfileStore()
	profileSource = adapter.NewRandomProfileSource()
	wireDependencies(rootCmd)
}

// wireDependencies builds the UI, analyzer and workflow from the current
// viper state. Called once at init for config/env defaults and again after
// flag parsing so --tui and --verbose take effect. The root command is
// passed in rather than read from the package variable to avoid an
// initialization cycle with rootCmd.
func wireDependencies(root *cobra.Command) {
	ui = controller.NewUI(root, controller.IsTTY(os.Stdout) && viper.GetBool(tuiFlagName))
	analyzer = domain.NewAnalyzer(domain.AnalyzerOptions{
		MaxVoters: viper.GetInt(maxVotersKey),
		Workers:   viper.GetInt(analyzeParallelKey),
	})
	workflow = domain.NewWorkflow(profileStore, profileSource, ui, analyzer)

	configureLogger("", viper.GetBool(verboseFlagName))
}

const profileFileHelp = `Profiles are YAML documents:
  alternatives: [a, b, c]
  rankings:
    - [a, b, c]
    - [b, c, a]
    - [c, a, b]`

const rootLongDescription = `pvc computes the proportional veto core of a preference profile: the set of
alternatives no voter coalition has enough veto power to eliminate. For any
alternative outside the core it reports a vetoing coalition, and it overlays
the classical successive-elimination result for comparison.

` + profileFileHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pvc",
		Short: "Proportional veto core playground",
		Long:  rootLongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wireDependencies(cmd.Root())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&profilePathFlag, profileFlagName, "f",
		viper.GetString(profileConfigKey),
		"path of the profile YAML document",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(profileFlagName), profileConfigKey)

	cmd.PersistentFlags().BoolVar(&tuiFlag, tuiFlagName, false, "page large analyses interactively when attached to a terminal")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(tuiFlagName), tuiFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// profileArg resolves the profile path: a positional argument wins over the
// --profile flag and its config default.
func profileArg(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(profileConfigKey))
}
