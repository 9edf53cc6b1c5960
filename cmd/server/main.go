// Command server runs the DVX Studio backend API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvxstudio/backend/app/routes"
	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/config"
	"github.com/dvxstudio/backend/internal/auth"
	"github.com/dvxstudio/backend/internal/store"
	"github.com/dvxstudio/backend/pkg/logger"
	"github.com/dvxstudio/backend/pkg/metrics"
	"github.com/dvxstudio/backend/pkg/middleware"
	"github.com/dvxstudio/backend/pkg/reqid"
	"github.com/dvxstudio/backend/pkg/router"
)

func main() {
	var (
		port    string
		dataDir string
		engine  string
	)

	root := &cobra.Command{
		Use:           "server",
		Short:         "DVX Studio backend API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(port, dataDir, engine)
		},
	}

	root.Flags().StringVar(&port, "port", "", "listen port (overrides APP_PORT)")
	root.Flags().StringVar(&dataDir, "data-dir", "", "document directory (overrides DATA_DIR)")
	root.Flags().StringVar(&engine, "store", "", "storage engine: file, sqlite or memory (overrides STORE_BACKEND)")

	if err := root.Execute(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(port, dataDir, engine string) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port == "" {
		port = config.AppPort()
	}
	if dataDir == "" {
		dataDir = config.DataDir()
	}
	if engine == "" {
		engine = config.StoreBackend()
	}

	backend, err := store.Open(engine, dataDir)
	if err != nil {
		return err
	}
	defer backend.Close() //nolint:errcheck

	docs := store.NewDocumentStore(backend)
	if err := services.RegisterDefaults(docs); err != nil {
		return fmt.Errorf("register defaults: %w", err)
	}
	if err := docs.Init(); err != nil {
		return fmt.Errorf("materialize defaults: %w", err)
	}

	posts := services.NewPostService(docs)
	orders := services.NewOrderService(docs)

	r := router.New()
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.AccessLog(config.LogsDir()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r, routes.Deps{
		Docs:     docs,
		Posts:    posts,
		Orders:   orders,
		Settings: services.NewSettingsService(docs),
		Stats:    services.NewStatsService(posts, orders),
		Gate:     auth.NewGate(config.AdminPassword()),
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "port", port, "store", engine, "data_dir", dataDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
