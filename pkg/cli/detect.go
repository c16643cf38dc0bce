package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/detect"
)

// DetectOutput is one row of `detect --json`.
type DetectOutput struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Rule string `json:"rule,omitempty"`
}

var detectJSON bool

var detectCmd = &cobra.Command{
	Use:   "detect <name>...",
	Short: "Show the field type a field name suggests",
	Long: `Show the field type inferred from each field name, and the rule that matched.

Example:
  mockshape detect userEmail createdAt isActive totalPrice`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([]DetectOutput, 0, len(args))
		for _, name := range args {
			row := DetectOutput{Name: name, Type: detect.Type(name, nil).String()}
			if rule, ok := detect.Match(name); ok {
				row.Rule = rule.Description
			}
			rows = append(rows, row)
		}

		if detectJSON {
			return output.JSON(cmd.OutOrStdout(), rows, cfg.IndentWidth())
		}

		w := output.Table(cmd.OutOrStdout())
		fmt.Fprintln(w, "NAME\tTYPE\tRULE")
		for _, r := range rows {
			rule := r.Rule
			if rule == "" {
				rule = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Type, rule)
		}
		return w.Flush()
	},
}

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(detectCmd)
}
