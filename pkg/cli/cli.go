package cli

import (
	"context"
	"log/slog"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/cli/config"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/types"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "f3a",
		Usage:   "F3A Pattern Aerobatics RC Club information service",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			return logging.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdClient(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
