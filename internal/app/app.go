// Package app wires configuration, logging, storage, providers, services,
// and the HTTP server into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memelingo-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/memelingo-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/memelingo-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/memelingo-backend/internal/adapter/storage"
	"github.com/heartmarshall/memelingo-backend/internal/config"
	"github.com/heartmarshall/memelingo-backend/internal/service/notebook"
	"github.com/heartmarshall/memelingo-backend/internal/service/session"
	"github.com/heartmarshall/memelingo-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// dependency graph, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("provider", cfg.Provider.Name),
		slog.String("notebook_driver", cfg.Notebook.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	store, closeStore, err := buildStorage(cfg.Notebook, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeStore()

	notebookSvc := notebook.NewService(logger, store)
	notebookSvc.Load(ctx)

	translator, illustrator, err := BuildProvider(ctx, cfg.Provider, logger)
	if err != nil {
		return fmt.Errorf("init provider: %w", err)
	}

	sessionSvc := session.NewService(logger, translator, illustrator)

	router := rest.NewRouter(logger, sessionSvc, notebookSvc, cfg.CORS, BuildVersion())

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		// Let an in-flight session settle so its result is not lost
		// mid-write; fenced writes make this safe even if it already has.
		sessionSvc.Wait()
		return nil
	})

	return g.Wait()
}

func buildStorage(cfg config.NotebookConfig, logger *slog.Logger) (notebook.Storage, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		store, err := storage.OpenSQLite(cfg.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("close sqlite store", slog.String("error", err.Error()))
			}
		}, nil
	default:
		return storage.NewFileStore(cfg.Path, logger), func() {}, nil
	}
}

// BuildProvider constructs the translation and illustration clients for the
// configured provider. The illustrator is nil when the provider cannot
// generate images.
func BuildProvider(ctx context.Context, cfg config.ProviderConfig, logger *slog.Logger) (session.Translator, session.Illustrator, error) {
	switch cfg.Name {
	case "openai":
		client := openai.New(cfg, logger)
		return client, client, nil
	case "anthropic":
		// No image model; illustrations stay disabled.
		return anthropic.New(cfg, logger), nil, nil
	default:
		client, err := gemini.New(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, client, nil
	}
}
