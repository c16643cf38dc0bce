package cli

import (
	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/validation"
)

var jsonschemaCmd = &cobra.Command{
	Use:   "jsonschema <schema>",
	Short: "Print the JSON Schema that generated data satisfies",
	Long: `Print a JSON Schema (draft 2020-12) describing every document generate can
produce from the schema: exact keys, exact array lengths, formats and literal
values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := loadSchema(cmd, args[0])
		if err != nil {
			return err
		}
		return output.JSON(cmd.OutOrStdout(), validation.OutputSchema(n), cfg.IndentWidth())
	},
}

func init() {
	rootCmd.AddCommand(jsonschemaCmd)
}
