package cli

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|glob>...",
	Short: "Check schema files",
	Long: `Check that schema files are well formed. Arguments may be glob patterns,
including ** for any number of directories.

Examples:
  mockshape validate user.json
  mockshape validate 'schemas/**/*.yaml'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := expandGlobs(args)
	if err != nil {
		return err
	}

	w := output.Table(cmd.OutOrStdout())
	failed := 0
	for _, path := range files {
		n, err := schema.LoadFile(path)
		if err != nil {
			failed++
			logger.Debug("schema rejected", "source", path, "error", err)
			fmt.Fprintf(w, "FAIL\t%s\t%v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "ok\t%s\t%d nodes\n", path, schema.Count(n))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d schemas invalid", failed, len(files))
	}
	return nil
}

// expandGlobs resolves each argument to the files it matches. A pattern
// that matches nothing is an error so typos are not mistaken for success.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
