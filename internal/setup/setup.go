package setup

import (
	"context"
	"log"
	"time"

	"github.com/scamtrace/scamtrace/internal/balance"
	"github.com/scamtrace/scamtrace/internal/database"
	"github.com/scamtrace/scamtrace/internal/database/service"
	"github.com/scamtrace/scamtrace/internal/redis"
	"github.com/scamtrace/scamtrace/internal/setup/config"
	"github.com/scamtrace/scamtrace/internal/setup/telemetry"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config        // Application configuration
	Logger       *zap.Logger           // Main application logger
	DBLogger     *zap.Logger           // Database-specific logger
	DB           database.Client       // Database connection pool
	RedisManager *redis.Manager        // Redis connection manager
	BadgeService *service.BadgeService // Badge evaluation over balances and bounties
	LogManager   *telemetry.Manager    // Log management system
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, componentName, logDir string) (*App, error) {
	// Load app configuration
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logManager := telemetry.NewManager(componentName, logDir, &cfg.Debug)

	logger, dbLogger, err := logManager.GetLoggers()
	if err != nil {
		return nil, err
	}

	// Redis manager provides connection pools for various subsystems
	redisManager := redis.NewManager(&cfg.Redis, logger)

	// Initialize database with pending migrations applied
	db, err := database.NewConnection(ctx, cfg, dbLogger, true)
	if err != nil {
		return nil, err
	}

	// Balance lookups go through a Redis read-through cache in front of the
	// indexer endpoint
	balanceClient, err := redisManager.GetClient(redis.BalanceDBIndex)
	if err != nil {
		return nil, err
	}

	balanceCache := balance.NewCache(
		balanceClient,
		balance.NewHTTPSource(cfg.Badge.BalanceURL, logger),
		time.Duration(cfg.Bounty.BalanceTTLMinutes)*time.Minute,
		logger,
	)

	badgeService := service.NewBadge(balanceCache, db.Model().Scammer(), &cfg.Badge, logger)

	// Bundle all initialized components
	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger.Named("database"),
		DB:           db,
		RedisManager: redisManager,
		BadgeService: badgeService,
		LogManager:   logManager,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse initialization order.
// Logs but does not fail on cleanup errors to ensure all components get cleanup attempts.
func (s *App) Cleanup(_ context.Context) {
	// Sync buffered logs before shutdown
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := s.DBLogger.Sync(); err != nil {
		log.Printf("Failed to sync DB logger: %v", err)
	}

	// Close database connections
	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	// Close Redis connections last as other components might need it during cleanup
	s.RedisManager.Close()
}
