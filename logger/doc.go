// Package logger builds the service's zap logger from configuration.
//
// Entries carry a "service" field. Output defaults to stderr because stdout
// carries the MCP stdio transport.
//
// Usage:
//
//	logger, err := logger.New("production", "info", "stderr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger.Info("preview assembled", zap.Int("files", 18))
package logger
