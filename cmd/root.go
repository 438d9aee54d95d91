// Package cmd provides the root command and CLI setup for cargo-clean-recursive.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cleanrec.dev/pkg/cleanrec/internal/adapter"
	"cleanrec.dev/pkg/cleanrec/internal/controller"
	"cleanrec.dev/pkg/cleanrec/internal/domain"
	"cleanrec.dev/pkg/cleanrec/pkg"
)

// cargoSubcommandName is the argument cargo inserts when the tool is run as
// `cargo clean-recursive`.
const cargoSubcommandName = "clean-recursive"

var dirFSAdapter adapter.DirFSAdapter
var cargoAdapter *adapter.LocalCargoAdapter
var sweeper domain.Sweeper
var workflow domain.Workflow
var ui controller.UI

// logFileFlag and verboseFlag are root-level flags shared by every command.
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)
	configureScanFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stderr))
	dirFSAdapter = adapter.NewLocalDirFSAdapter()
	cargoAdapter = adapter.NewLocalCargoAdapter(viper.GetString(programConfigKey))
	sweeper = domain.NewSweeper(dirFSAdapter, cargoAdapter, ui)
	workflow = domain.NewWorkflow(dirFSAdapter, ui, sweeper)
}

const rootLongDescription = `Recursively find Cargo build roots (directories holding both Cargo.toml
and a target/ directory) and run cargo clean in each of them.

A directory that cannot be read or cleaned is reported as a warning and the
scan carries on with its siblings; only a failure at the starting directory
ends the run with an error.

Can also be invoked as "cargo clean-recursive".`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd returns a fully configured root command without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	configureScanFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cargo-clean-recursive",
		Short:         "Run cargo clean in every Cargo project below a directory",
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configLoadErr != nil {
				return configLoadErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: runScan,
	}

	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// normalizeFlagName accepts the underscore spelling of --exclude-dirs.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == legacyExcludeDirsFlagName {
		name = excludeDirsFlagName
	}

	return pflag.NormalizedName(name)
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
	if args, ok := stripCargoSubcommand(os.Args[1:]); ok {
		rootCmd.SetArgs(args)
	}

	err := rootCmd.Execute()
	if err != nil {
		printErrorChain(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// stripCargoSubcommand drops the leading subcommand name cargo passes to
// external subcommands.
func stripCargoSubcommand(args []string) ([]string, bool) {
	if len(args) > 0 && args[0] == cargoSubcommandName {
		return args[1:], true
	}

	return args, false
}

func printErrorChain(w io.Writer, err error) {
	chain := pkg.ErrorChain(err)
	if len(chain) == 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", chain[0])

	for _, cause := range chain[1:] {
		_, _ = fmt.Fprintf(w, "\t< %s\n", cause)
	}
}
