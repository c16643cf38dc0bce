package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
)

// VersionOutput is the JSON form of `version --json`.
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show mockshape version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := VersionOutput{
			Version: Version,
			Commit:  Commit,
			Date:    BuildDate,
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
		}
		if info, ok := debug.ReadBuildInfo(); ok {
			if out.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
				out.Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if out.Commit == "none" {
						out.Commit = setting.Value
					}
				case "vcs.time":
					if out.Date == "unknown" {
						out.Date = setting.Value
					}
				}
			}
		}

		if versionJSON {
			return output.JSON(cmd.OutOrStdout(), out, cfg.IndentWidth())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "mockshape %s (%s, %s)\n", out.Version, out.Commit, out.Date)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s/%s\n", out.Go, out.OS, out.Arch)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(versionCmd)
}
