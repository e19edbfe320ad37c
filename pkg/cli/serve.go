package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/cli/config"
	controller "github.com/secmon-lab/defectdash/pkg/controller/http"
	"github.com/secmon-lab/defectdash/pkg/usecase"
	"github.com/secmon-lab/defectdash/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		datasetCfg   config.Dataset
		metricsCfg   config.Metrics
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
		datasetCfg.Flags(),
		metricsCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting defectdash server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("dataset", datasetCfg),
				slog.Any("metrics", metricsCfg),
			)

			metricsConfig, err := metricsCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := setupRepository(ctx, &firestoreCfg, &datasetCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			var notificationOpts []usecase.NotificationOption
			if notifier := slackCfg.Configure(); notifier != nil {
				if err := notifier.Verify(ctx); err != nil {
					return goerr.Wrap(err, "failed to configure Slack notifier")
				}
				notificationOpts = append(notificationOpts, usecase.WithSlackNotifier(notifier))
			} else {
				logger.Info("Slack not configured, notifications are not forwarded")
			}

			useCases := controller.NewUseCases(
				usecase.NewDashboard(repo, usecase.WithMetricsConfig(metricsConfig)),
				usecase.NewNotification(repo, notificationOpts...),
			)

			server, err := controller.NewServer(ctx,
				controller.NewConfig(serverCfg.Addr, serverCfg.AllowedOrigin),
				useCases,
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := async.Wait(shutdownCtx); err != nil {
				logger.Warn("Background tasks did not finish before shutdown", "error", err)
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
