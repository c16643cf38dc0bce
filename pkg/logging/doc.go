// Package logging configures the structured logger used by the mockshape
// command.
//
// It wraps log/slog. The schema, synthesis and edit packages never log;
// only the command layer does.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	logger.Debug("schema loaded", "source", path, "nodes", n)
//
// Callers that need a logger but have nothing to say use Nop.
package logging
