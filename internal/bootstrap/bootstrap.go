// Package bootstrap assembles the application: configuration, logging,
// storage, the domain state store and the HTTP router.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/dccc/clubportal/internal/app/controllers"
	appRoutes "github.com/dccc/clubportal/internal/app/routes"
	appServices "github.com/dccc/clubportal/internal/app/services"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/config"
	"github.com/dccc/clubportal/internal/db"
	"github.com/dccc/clubportal/internal/kvstore"
	appMiddleware "github.com/dccc/clubportal/internal/middleware"
	pkgAuth "github.com/dccc/clubportal/internal/pkg/auth"
	"github.com/dccc/clubportal/internal/pkg/logger"
	"github.com/dccc/clubportal/internal/pkg/metrics"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store          *store.Store
	KV             kvstore.Store
	PostgresDB     *db.PostgresDB
	AuthService    appServices.AuthService
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the key-value backend selected by the storage
// driver. With the postgres driver the returned PostgresDB owns the
// connection pool and must be closed by the caller on shutdown.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (kvstore.Store, *db.PostgresDB, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		lgr.Info().Msg("Using in-memory storage, state will not survive restarts")
		return kvstore.NewMemoryStore(), nil, nil

	case config.StorageDriverSQLite:
		kv, err := kvstore.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.Path).Msg("SQLite storage opened")
		return kv, nil, nil

	case config.StorageDriverPostgres:
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		kv, err := kvstore.NewPostgresStore(ctx, database.Pool)
		if err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to prepare postgres storage: %w", err)
		}
		lgr.Info().Str("host", cfg.Storage.Postgres.Host).Msg("Postgres storage prepared")
		return kv, database, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies initializes the domain state store, services,
// middleware and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, kv kvstore.Store, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		KV:         kv,
		PostgresDB: database,
		Logger:     lgr,
	}

	st, err := store.New(ctx, kv, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to load domain state store: %w", err)
	}
	deps.Store = st

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(st, deps.JWTService, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, st)

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.AuthService, st),
		User:         appControllers.NewUserController(st),
		Submission:   appControllers.NewSubmissionController(st),
		Event:        appControllers.NewEventController(st),
		Activity:     appControllers.NewActivityController(st),
		Leaderboard:  appControllers.NewLeaderboardController(st),
		Notification: appControllers.NewNotificationController(st),
		Settings:     appControllers.NewSettingsController(st),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(metrics.RequestMetrics())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
