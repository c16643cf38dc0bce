package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockshape/pkg/cliconfig"
	"github.com/getmockd/mockshape/pkg/logging"
	"github.com/getmockd/mockshape/pkg/schema"
)

var (
	// Persistent flags available to all subcommands.
	logLevelFlag  string
	logFormatFlag string
	indentFlag    int

	// cfg and logger are set up before any command runs.
	cfg    = cliconfig.NewDefault()
	logger = logging.Nop()

	// Version is injected during build.
	Version = "dev"
	// Commit is injected during build.
	Commit = "none"
	// BuildDate is injected during build.
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mockshape",
	Short: "mockshape generates realistic mock data from schemas",
	Long: `mockshape describes JSON-like data as a tree of objects, arrays and typed
primitives, and synthesizes realistic values that conform to it.

Settings come from ~/.config/mockshape/config.yaml, .mockshaperc.yaml in the
working directory, MOCKSHAPE_* environment variables and flags, in increasing
order of precedence.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (text, json)")
	rootCmd.PersistentFlags().IntVar(&indentFlag, "indent", cliconfig.DefaultIndent, "Spaces per JSON indent level, 0 for compact output")
}

// Main runs the command line and returns the process exit code.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Debug("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// setup loads configuration, applies the persistent flags on top and
// builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := cliconfig.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := &cliconfig.Config{}
	if cmd.Flags().Changed("log-level") {
		flags.LogLevel = logLevelFlag
	}
	if cmd.Flags().Changed("log-format") {
		flags.LogFormat = logFormatFlag
	}
	if cmd.Flags().Changed("indent") {
		flags.Indent = &indentFlag
	}
	if cmd.Flags().Lookup("seed") != nil && cmd.Flags().Changed("seed") {
		flags.Seed = &seedFlag
	}
	cliconfig.MergeConfig(loaded, flags, cliconfig.SourceFlag)

	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	lc := cfg.LoggingConfig()
	lc.Output = cmd.ErrOrStderr()
	logger = logging.New(lc).With("command", cmd.CommandPath())
	slog.SetDefault(logger)
	return nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// loadSchema reads a schema document from a file or stdin. Stdin is read as
// JSON when it starts with '{', otherwise as YAML.
func loadSchema(cmd *cobra.Command, path string) (schema.Node, error) {
	var (
		n   schema.Node
		err error
	)
	if path == "-" {
		var data []byte
		if data, err = readInput(cmd, path); err != nil {
			return nil, err
		}
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
			n, err = schema.Parse(data)
		} else {
			n, err = schema.ParseYAML(data)
		}
	} else {
		n, err = schema.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(path), err)
	}

	logger.Debug("schema loaded",
		"source", displayName(path),
		"nodes", schema.Count(n),
		"depth", schema.Depth(n),
	)
	return n, nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.ToSlash(path)
}

// isYAML reports whether a path names a YAML file.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
