package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/cliconfig"
)

// ConfigOutput is one row of `config --json`.
type ConfigOutput struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration and the source of each value: default,
global, local, env or flag.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		seed := "random"
		if cfg.Seed != nil {
			seed = strconv.FormatUint(*cfg.Seed, 10)
		}
		rows := []ConfigOutput{
			{Key: cliconfig.KeyLogLevel, Value: cfg.LogLevel},
			{Key: cliconfig.KeyLogFormat, Value: cfg.LogFormat},
			{Key: cliconfig.KeySeed, Value: seed},
			{Key: cliconfig.KeyIndent, Value: strconv.Itoa(cfg.IndentWidth())},
		}
		for i := range rows {
			rows[i].Source = cfg.Sources[rows[i].Key]
			if rows[i].Source == "" {
				rows[i].Source = cliconfig.SourceDefault
			}
		}

		if configJSON {
			return output.JSON(cmd.OutOrStdout(), rows, cfg.IndentWidth())
		}

		w := output.Table(cmd.OutOrStdout())
		fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Key, r.Value, r.Source)
		}
		return w.Flush()
	},
}

func init() {
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(configCmd)
}
