package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/schema"
)

// TypeOutput is one row of `types --json`.
type TypeOutput struct {
	Type        string `json:"type"`
	JSONType    string `json:"jsonType"`
	Example     any    `json:"example"`
	Description string `json:"description"`
}

var typesJSON bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List field types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rows := make([]TypeOutput, 0, len(schema.FieldTypes()))
		for _, t := range schema.FieldTypes() {
			rows = append(rows, TypeOutput{
				Type:        t.String(),
				JSONType:    t.JSONType(),
				Example:     t.Example(),
				Description: t.Description(),
			})
		}

		if typesJSON {
			return output.JSON(cmd.OutOrStdout(), rows, cfg.IndentWidth())
		}

		w := output.Table(cmd.OutOrStdout())
		fmt.Fprintln(w, "TYPE\tJSON\tEXAMPLE\tDESCRIPTION")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", r.Type, r.JSONType, r.Example, r.Description)
		}
		return w.Flush()
	},
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(typesCmd)
}
