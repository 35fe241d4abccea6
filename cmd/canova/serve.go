package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/pkg/adapters/file"
	httpAdapter "github.com/aretw0/canova/pkg/adapters/http"
	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/keylock"
	"github.com/aretw0/canova/pkg/observability"
	"github.com/aretw0/canova/pkg/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the form builder REST API. The store driver, secrets and listener are
read from the configuration file and CANOVA_* environment variables.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	logger := newLogger(cfg.Log.Level)
	banner(cmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.close(); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}()

	secret := []byte(cfg.Auth.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate token secret: %w", err)
		}
		logger.Warn("No JWT secret configured, using a random one. Tokens will not survive a restart.")
	}
	tokens, err := auth.NewTokens(secret, auth.WithTTL(cfg.Auth.TokenTTL))
	if err != nil {
		return err
	}

	var metrics *observability.Metrics
	if cfg.Server.Metrics {
		metrics = observability.NewMetrics()
	}
	hooks := observability.Hooks(logger, metrics)

	lockOpts := []keylock.Option{keylock.WithTTL(cfg.Store.LockTTL), keylock.WithLogger(logger)}
	if b.locker != nil {
		lockOpts = append(lockOpts, keylock.WithLocker(b.locker))
	}

	host := file.New(cfg.Media.Dir, cfg.Media.BaseURL)
	svc := service.New(b.store, tokens,
		service.WithEngine(canova.New(canova.WithLogger(logger), canova.WithLifecycleHooks(hooks))),
		service.WithLocks(keylock.New(lockOpts...)),
		service.WithMediaHost(host, cfg.Media.BaseURL),
		service.WithFrontendURL(cfg.Server.FrontendURL),
		service.WithLifecycleHooks(hooks),
		service.WithLogger(logger),
	)

	handlerOpts := []httpAdapter.Option{
		httpAdapter.WithMedia(host),
		httpAdapter.WithLogger(logger),
		httpAdapter.WithCORSOrigins(cfg.Server.CORSOrigins...),
	}
	if metrics != nil {
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(metrics))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpAdapter.NewHandler(svc, handlerOpts...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting Canova server", "addr", srv.Addr, "store", cfg.Store.Driver, "version", canova.Version)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				logger.Error("Error killing server", "error", err)
			}
		}
	}

	// wait for response wipes and media cleanups before closing the store
	svc.Wait()
	logger.Info("Canova server stopped gracefully")
	return nil
}
