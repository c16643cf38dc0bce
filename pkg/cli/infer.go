package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/portability"
	"github.com/getmockd/mockshape/pkg/schema"
)

var inferCmd = &cobra.Command{
	Use:   "infer <sample.json>",
	Short: "Build a schema from a sample JSON document",
	Long: `Build a schema from a sample JSON document, or "-" for stdin. Keys keep
their order; strings are typed by content and then by key; arrays are typed
from their first element.

Example:
  curl -s https://api.example.com/users/1 | mockshape infer - > user.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		n, err := portability.InferJSON(data)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(args[0]), err)
		}
		logger.Debug("schema inferred", "source", displayName(args[0]), "nodes", schema.Count(n))
		return output.JSON(cmd.OutOrStdout(), n, cfg.IndentWidth())
	},
}

func init() {
	rootCmd.AddCommand(inferCmd)
}
