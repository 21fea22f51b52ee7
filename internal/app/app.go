package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/goaltime/goaltime/internal/cache"
	"github.com/goaltime/goaltime/internal/config"
	"github.com/goaltime/goaltime/internal/db"
	"github.com/goaltime/goaltime/internal/repository"
	"github.com/goaltime/goaltime/internal/service"
	"github.com/goaltime/goaltime/internal/tracker"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Cache            cache.Cache
	Tracker          *tracker.Tracker
	UserRepository   repository.UserRepository
	AuthService      *service.AuthService
	EmailService     *service.EmailService
	GoalService      *service.GoalService
	TimeEntryService *service.TimeEntryService
	DailyGoalService *service.DailyGoalService
	JournalService   *service.JournalService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Query cache: redis when configured, in-process otherwise
	var queryCache cache.Cache
	if cfg.RedisAddr != "" {
		queryCache, err = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %v", err)
		}
		slog.Info("query cache backed by redis", "addr", cfg.RedisAddr)
	} else {
		queryCache = cache.NewMemory()
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	timeEntryRepository := repository.NewTimeEntryRepository(database)
	dailyGoalRepository := repository.NewDailyGoalRepository(database)
	journalRepository := repository.NewJournalRepository(database)

	// One stopwatch session per user, process-local
	trk := tracker.New(nil)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		tokenRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
		cfg.TokenPasswordResetExpiry,
	)
	goalService := service.NewGoalService(goalRepository, queryCache, cfg.CacheTTL)
	timeEntryService := service.NewTimeEntryService(timeEntryRepository, goalRepository, trk, queryCache, cfg.CacheTTL, nil)
	dailyGoalService := service.NewDailyGoalService(dailyGoalRepository, queryCache, cfg.CacheTTL, nil)
	journalService := service.NewJournalService(journalRepository, queryCache, cfg.CacheTTL, nil)

	return &App{
		Cfg:              cfg,
		DB:               database,
		Cache:            queryCache,
		Tracker:          trk,
		UserRepository:   userRepository,
		AuthService:      authService,
		EmailService:     emailService,
		GoalService:      goalService,
		TimeEntryService: timeEntryService,
		DailyGoalService: dailyGoalService,
		JournalService:   journalService,
	}, nil
}

func (a *App) Close() error {
	err := a.Cache.Close()
	if err != nil {
		slog.Warn("failed to close cache", "error", err)
	}
	return a.DB.Close()
}
