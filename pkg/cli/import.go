package cli

import (
	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/portability"
	"github.com/getmockd/mockshape/pkg/schema"
)

var importSchemaName string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert schemas from other formats",
}

var importOpenAPICmd = &cobra.Command{
	Use:   "openapi <spec> --schema <name>",
	Short: "Import a component schema from an OpenAPI 3 document",
	Long: `Import a component schema from an OpenAPI 3 document (JSON or YAML).

Example:
  mockshape import openapi petstore.yaml --schema Pet > pet.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := portability.LoadOpenAPI(args[0], importSchemaName)
		if err != nil {
			return err
		}
		logger.Debug("schema imported", "source", args[0], "component", importSchemaName, "nodes", schema.Count(n))
		return output.JSON(cmd.OutOrStdout(), n, cfg.IndentWidth())
	},
}

func init() {
	importOpenAPICmd.Flags().StringVar(&importSchemaName, "schema", "", "Name of the component under components.schemas")
	_ = importOpenAPICmd.MarkFlagRequired("schema")
	importCmd.AddCommand(importOpenAPICmd)
	rootCmd.AddCommand(importCmd)
}
