package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildVersion is what the binary knows about its own build.
type buildVersion struct {
	Version   string
	Revision  string
	BuildTime string
	Modified  bool
	GoVersion string
}

// versionFromBuildInfo extracts the module version and VCS stamp. A nil info
// yields an unknown version.
func versionFromBuildInfo(info *debug.BuildInfo) buildVersion {
	v := buildVersion{Version: unknownVersion}
	if info == nil {
		return v
	}

	if info.Main.Version != "" {
		v.Version = info.Main.Version
	}

	v.GoVersion = info.GoVersion

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Revision = setting.Value
		case "vcs.time":
			v.BuildTime = setting.Value
		case "vcs.modified":
			v.Modified = setting.Value == "true"
		}
	}

	return v
}

func (v buildVersion) write(w io.Writer) {
	_, _ = fmt.Fprintf(w, "cargo-clean-recursive %s\n", v.Version)

	if v.Revision != "" {
		revision := v.Revision
		if v.Modified {
			revision += " (modified)"
		}

		_, _ = fmt.Fprintf(w, "commit\t%s\n", revision)
	}

	if v.BuildTime != "" {
		_, _ = fmt.Fprintf(w, "built\t%s\n", v.BuildTime)
	}

	if v.GoVersion != "" {
		_, _ = fmt.Fprintf(w, "go\t%s\n", v.GoVersion)
	}
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the module version, the VCS commit and the Go toolchain this binary was built from.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			var info *debug.BuildInfo
			if bi, ok := debug.ReadBuildInfo(); ok {
				info = bi
			}

			v := versionFromBuildInfo(info)
			if short {
				cmd.Println(v.Version)
				return
			}

			v.write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print the version number only")

	return cmd
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
