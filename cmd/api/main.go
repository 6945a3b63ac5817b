package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/blogapi/blogapi-go/internal/config"
	"github.com/blogapi/blogapi-go/internal/crypto"
	"github.com/blogapi/blogapi-go/internal/handler"
	"github.com/blogapi/blogapi-go/internal/middleware"
	"github.com/blogapi/blogapi-go/internal/repository"
	"github.com/blogapi/blogapi-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	users, blogs, db, err := openStores(ctx, cfg)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	hasher := crypto.NewHasher(cfg.BcryptCost)
	tokens := crypto.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	router := handler.NewRouter(handler.Routes{
		Auth:        handler.NewAuthHandler(service.NewAuthService(users, hasher, tokens)),
		Users:       handler.NewUserHandler(service.NewUserService(users, hasher)),
		Blogs:       handler.NewBlogHandler(service.NewBlogService(blogs)),
		Tokens:      tokens,
		UserLookup:  users,
		RateLimiter: middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openStores connects to MySQL and migrates it, or falls back to in-memory
// stores when no DSN is configured.
func openStores(ctx context.Context, cfg config.Config) (service.UserStore, service.BlogStore, *sql.DB, error) {
	if cfg.DatabaseDSN == "" {
		slog.Warn("DATABASE_DSN not set, using in-memory storage")
		return repository.NewMemoryUserRepository(), repository.NewMemoryBlogRepository(), nil, nil
	}

	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	return repository.NewUserRepository(db), repository.NewBlogRepository(db), db, nil
}
