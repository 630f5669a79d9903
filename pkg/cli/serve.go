package cli

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/cli/config"
	controller "github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/controller/http"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/infra/catalog"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/usecase"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		sentryCfg config.Sentry
	)

	flags := append(serverCfg.Flags(), sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			logger.Info("Starting f3a-microservice",
				slog.String("addr", serverCfg.Addr()),
				slog.Any("cors_origins", serverCfg.CORSOrigins),
				slog.String("static_dir", serverCfg.StaticDir),
				slog.Any("sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			clubCatalog, err := catalog.Load()
			if err != nil {
				return err
			}

			opts := []controller.Option{
				controller.WithAddr(serverCfg.Addr()),
				controller.WithAllowedOrigins(serverCfg.CORSOrigins...),
			}
			if serverCfg.StaticDir != "" {
				staticFS, err := openStaticDir(serverCfg.StaticDir)
				if err != nil {
					return err
				}
				opts = append(opts, controller.WithStaticFS(staticFS))
			}

			server, err := controller.NewServer(ctx, usecase.NewClub(clubCatalog), opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info(fmt.Sprintf("F3A Microservice running on port %d", serverCfg.Port))
				logger.Info(fmt.Sprintf("Health check: http://localhost:%d/health", serverCfg.Port))
				logger.Info(fmt.Sprintf("Website: http://localhost:%d", serverCfg.Port))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server stopped", goerr.V("addr", serverCfg.Addr()))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

func openStaticDir(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open static directory", goerr.V("dir", dir))
	}
	if !info.IsDir() {
		return nil, goerr.New("static path is not a directory", goerr.V("dir", dir))
	}
	return os.DirFS(dir), nil
}
