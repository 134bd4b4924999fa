package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/isdmx/previewbox/config"
	"github.com/isdmx/previewbox/logger"
	"github.com/isdmx/previewbox/mcpserver"
	"github.com/isdmx/previewbox/sandbox"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.New,
			logger.NewFromConfig,
			sandbox.NewFromConfig,
			mcpserver.New,
		),

		fx.Invoke(serve),

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)

	app.Run()
}

// serve starts the configured transport once the app has started and
// stops the app if the transport exits.
func serve(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, log *zap.Logger, server *mcpserver.MCPServer) {
	lc.Append(fx.StartHook(func() {
		go func() {
			var err error
			switch cfg.Server.Transport {
			case "stdio":
				err = server.ServeStdio()
			case "http":
				err = server.ServeHTTP()
			}
			if err != nil {
				log.Error("transport stopped", zap.Error(err), zap.String("transport", cfg.Server.Transport))
				_ = shutdowner.Shutdown(fx.ExitCode(1))
				return
			}
			_ = shutdowner.Shutdown()
		}()
	}))
}
