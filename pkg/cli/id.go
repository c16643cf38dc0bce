package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/internal/id"
)

var idCount int

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Print random identifiers",
	Long:  `Print random 26-character identifiers (128 bits, lowercase base32), one per line.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if idCount < 1 {
			return errors.New("--count must be at least 1")
		}
		for range idCount {
			fmt.Fprintln(cmd.OutOrStdout(), id.New())
		}
		return nil
	},
}

func init() {
	idCmd.Flags().IntVarP(&idCount, "count", "n", 1, "Number of identifiers")
	rootCmd.AddCommand(idCmd)
}
