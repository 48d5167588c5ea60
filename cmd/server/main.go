package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/yusufkecer/health-tracker/internal/auth"
	"github.com/yusufkecer/health-tracker/internal/config"
	"github.com/yusufkecer/health-tracker/internal/db"
	"github.com/yusufkecer/health-tracker/internal/handler"
	"github.com/yusufkecer/health-tracker/internal/logger"
	"github.com/yusufkecer/health-tracker/internal/middleware"
	"github.com/yusufkecer/health-tracker/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.DB.AutoMigrate {
		if err := db.RunMigrations(ctx, database, log); err != nil {
			return err
		}
	}

	accountRepo := repository.NewAccountRepository(database)
	recordRepo := repository.NewRecordRepository(database)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	renderer, err := handler.NewRenderer(log)
	if err != nil {
		return err
	}

	shellHandler := handler.NewShellHandler(handler.ShellDeps{
		Renderer:       renderer,
		Tokens:         tokens,
		Accounts:       accountRepo,
		Records:        recordRepo,
		CookieName:     cfg.Auth.CookieName,
		LoginURL:       cfg.Auth.LoginPath,
		ResolveTimeout: cfg.Server.AuthResolveTimeout,
		Logger:         log,
	})
	authHandler := handler.NewAuthHandler(tokens, accountRepo, renderer, cfg.Auth.CookieName, cfg.Auth.TokenTTL, log)
	recordHandler := handler.NewRecordHandler(recordRepo, log)

	router := handler.NewRouter(handler.RouterDeps{
		Shell:          shellHandler,
		Auth:           authHandler,
		Records:        recordHandler,
		Tokens:         tokens,
		LoginLimiter:   middleware.NewRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateWindow, cfg.Server.TrustProxyHeaders),
		CookieName:     cfg.Auth.CookieName,
		APIKey:         cfg.Server.APIKey,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
