package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/mockshape/pkg/cli/internal/output"
	"github.com/getmockd/mockshape/pkg/edit"
	"github.com/getmockd/mockshape/pkg/schema"
)

var editScript string

var editCmd = &cobra.Command{
	Use:   "edit <schema> --script <edits>",
	Short: "Apply an edit script to a schema",
	Long: `Apply a list of edit commands to a schema and print the result. The
schema file is not modified.

A script is a JSON or YAML list of commands, applied in order:

  - {op: setType, path: /0, type: email}
  - {op: setLength, path: /2, length: 10}
  - {op: setLiteral, path: /1/0, value: Ada}
  - {op: clearLiteral, path: /1/0}
  - {op: rename, path: /0, key: contact}
  - {op: insert, path: /, key: createdAt}
  - {op: remove, path: /3}

Paths are child indices from the root.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editScript, "script", "", "Edit script file (JSON or YAML), or - for stdin")
	_ = editCmd.MarkFlagRequired("script")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if args[0] == "-" && editScript == "-" {
		return errors.New("schema and script cannot both be read from stdin")
	}

	n, err := loadSchema(cmd, args[0])
	if err != nil {
		return err
	}

	cmds, err := loadScript(cmd, editScript)
	if err != nil {
		return err
	}

	out, err := edit.ApplyAll(n, cmds)
	if err != nil {
		return err
	}
	logger.Debug("edits applied", "commands", len(cmds), "nodes", schema.Count(out))

	return output.JSON(cmd.OutOrStdout(), out, cfg.IndentWidth())
}

func loadScript(cmd *cobra.Command, path string) ([]edit.Command, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	if !isYAML(path) {
		cmds, err := edit.ParseScript(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayName(path), err)
		}
		return cmds, nil
	}

	var cmds []edit.Command
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cmds); err != nil {
		return nil, fmt.Errorf("%s: invalid edit script: %w", displayName(path), err)
	}
	return cmds, nil
}
