package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/handlers"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/realtime"
	"github.com/SscSPs/currency_exchange_app/internal/scheduler"
	"github.com/SscSPs/currency_exchange_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the periodic rate ingestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		if skip, _ := cmd.Flags().GetBool("skip-migrations"); !skip {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return err
			}
		}

		hub := realtime.NewHub()
		app, err := newApplication(ctx, cfg, logger, hub)
		if err != nil {
			return err
		}
		defer app.Close(logger)

		if cfg.IsProduction {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
		if err := r.SetTrustedProxies(nil); err != nil {
			return fmt.Errorf("failed to set trusted proxies: %w", err)
		}
		if err := handlers.RegisterRoutes(r, cfg, app.services, hub); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}
		ingestion := scheduler.NewIngestionScheduler(
			app.services.Ingestion,
			cfg.IngestionBaseCurrencies,
			cfg.IngestionInterval,
			cfg.IngestionTimeout,
			logger,
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("Server starting", slog.String("port", cfg.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed to run: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			return ingestion.Run(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (overrides PORT)")
	serveCmd.Flags().Bool("skip-migrations", false, "do not apply pending migrations on start-up")
}
