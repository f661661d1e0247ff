package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edgecore/api-gateway/internal/api"
	"github.com/edgecore/api-gateway/internal/core/domain"
	"github.com/edgecore/api-gateway/internal/core/service"
	"github.com/edgecore/api-gateway/internal/infrastructure/config"
	mongodb "github.com/edgecore/api-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/edgecore/api-gateway/internal/infrastructure/db/redis"
	"github.com/edgecore/api-gateway/internal/infrastructure/logstore"
	"github.com/edgecore/api-gateway/internal/infrastructure/proxy"
	"github.com/edgecore/api-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "api-gateway",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// --- User store (MongoDB) ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	if cfg.Seed.Enabled {
		if err := seedUsers(ctx, userRepo, cfg); err != nil {
			log.Fatal().Err(err).Msg("user seeding failed")
		}
	}

	// --- Login throttle (Redis, optional) ---
	deps := api.Deps{
		AuthService: authService,
		ErrorLog:    logstore.NewMemory(),
		Forwarder:   proxy.NewForwarder(cfg.Proxy.Timeout, log),
		Mongo:       db,
		Log:         log,
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
	} else {
		defer func() { _ = rdb.Close() }()
		deps.Redis = rdb
		deps.LoginLimiter = redisdb.NewLoginThrottle(rdb, cfg.Throttle.LoginLimit, cfg.Throttle.LoginWindow)
	}

	e := api.NewRouter(cfg, deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("gateway stopped")
}

// seedUsers provisions the initial admin account. Existing accounts are left
// untouched so seeding is safe to run on every start.
func seedUsers(ctx context.Context, repo *mongodb.MongoUserRepository, cfg *config.Config) error {
	if cfg.Seed.AdminPassword == "" {
		return errors.New("SEED_ADMIN_PASSWORD must be set when SEED_USERS is enabled")
	}

	hash, err := service.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Email:        cfg.Seed.AdminEmail,
		Name:         "Administrator",
		PasswordHash: hash,
		Roles:        []string{domain.RoleAdmin, domain.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
