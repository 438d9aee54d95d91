package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cleanrec.dev/pkg/cleanrec/internal/domain"
	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

var docFlag bool
var releaseFlag bool
var depthFlag uint
var pathFlag string
var excludeDirsFlag []string
var strictFlag bool
var dryRunFlag bool
var programFlag string

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&docFlag, docFlagName, "d", viper.GetBool(docConfigKey), "clean generated documentation only")
	bindFlagToConfig(cmd.Flags().Lookup(docFlagName), docConfigKey)

	cmd.Flags().BoolVarP(&releaseFlag, releaseFlagName, "r", viper.GetBool(releaseConfigKey), "clean release artifacts only")
	bindFlagToConfig(cmd.Flags().Lookup(releaseFlagName), releaseConfigKey)

	cmd.Flags().UintVar(&depthFlag, depthFlagName, viper.GetUint(depthConfigKey), "recursive search depth limit")
	bindFlagToConfig(cmd.Flags().Lookup(depthFlagName), depthConfigKey)

	cmd.Flags().StringVarP(&pathFlag, pathFlagName, "p", viper.GetString(pathConfigKey), "directory to start from (default: current directory)")
	bindFlagToConfig(cmd.Flags().Lookup(pathFlagName), pathConfigKey)

	cmd.Flags().StringArrayVarP(&excludeDirsFlag, excludeDirsFlagName, "e", viper.GetStringSlice(excludeDirsConfigKey),
		"skip directories whose name ends with one of these space separated suffixes (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeDirsFlagName), excludeDirsConfigKey)

	cmd.Flags().BoolVar(&strictFlag, strictFlagName, viper.GetBool(strictConfigKey), "treat a non-zero exit of cargo clean as a failure of that directory")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), strictConfigKey)

	cmd.Flags().BoolVarP(&dryRunFlag, dryRunFlagName, "n", viper.GetBool(dryRunConfigKey), "list build roots without cleaning them")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), dryRunConfigKey)

	cmd.Flags().StringVar(&programFlag, programFlagName, viper.GetString(programConfigKey), "cargo executable to invoke")
	bindFlagToConfig(cmd.Flags().Lookup(programFlagName), programConfigKey)
}

func runScan(cmd *cobra.Command, _ []string) error {
	args, err := buildRunArgs()
	if err != nil {
		return err
	}

	cargoAdapter.SetProgram(viper.GetString(programConfigKey))

	return workflow.Run(cmd.Context(), args)
}

// buildRunArgs resolves the scan configuration from flags, environment and
// config file.
func buildRunArgs() (domain.RunArgs, error) {
	depth, err := cast.ToUintE(viper.Get(depthConfigKey))
	if err != nil {
		return domain.RunArgs{}, fmt.Errorf("parsing %s %v as number: %w", depthFlagName, viper.Get(depthConfigKey), err)
	}

	root := viper.GetString(pathConfigKey)
	if strings.TrimSpace(root) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.RunArgs{}, fmt.Errorf("getting current directory: %w", err)
		}

		root = wd
	}

	return domain.RunArgs{
		Root:  m.Path(root),
		Depth: depth,
		Config: m.Config{
			ExcludeDirs: m.ParseExcludeDirs(viper.GetStringSlice(excludeDirsConfigKey)),
			DeleteMode:  m.NewDeleteMode(viper.GetBool(docConfigKey), viper.GetBool(releaseConfigKey)),
			Strict:      viper.GetBool(strictConfigKey),
			DryRun:      viper.GetBool(dryRunConfigKey),
		},
	}, nil
}
