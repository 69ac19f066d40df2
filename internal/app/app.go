package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/config"
	"github.com/a2sh3r/mindflex/internal/countdown"
	"github.com/a2sh3r/mindflex/internal/database"
	"github.com/a2sh3r/mindflex/internal/handlers"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/metrics"
	"github.com/a2sh3r/mindflex/internal/repository"
	"github.com/a2sh3r/mindflex/internal/service"
	"github.com/a2sh3r/mindflex/internal/storage"
)

const (
	checkpointTTL     = 30 * 24 * time.Hour
	poolStatsInterval = 15 * time.Second
)

type App struct {
	cfg        *config.Config
	server     *http.Server
	db         *sql.DB
	redis      *redis.Client
	countdowns *countdown.Manager
	questions  service.QuestionService
	metrics    *metrics.Metrics

	stop context.CancelFunc
	wg   sync.WaitGroup
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("KEY must be set to sign session tokens")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	a := &App{cfg: cfg, db: db, metrics: metrics.NewMetrics()}

	var (
		checkpoints countdown.CheckpointStore = countdown.NewMemoryStore()
		revoker     auth.Revoker              = auth.NewMemoryRevoker()
	)
	if cfg.RedisAddr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			a.closeStores()
			return nil, fmt.Errorf("unable to reach redis: %w", err)
		}
		checkpoints = countdown.NewRedisStore(a.redis, checkpointTTL)
		revoker = auth.NewRedisRevoker(a.redis)
		logger.Log.Info("using redis for countdown checkpoints and revoked tokens", zap.String("addr", cfg.RedisAddr))
	}

	buckets, err := newBuckets(ctx, cfg)
	if err != nil {
		a.closeStores()
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	a.countdowns = countdown.NewManager(checkpoints, cfg.CountdownTick)

	userService := service.NewUserService(userRepo)
	a.questions = service.NewQuestionService(questionRepo, userRepo, buckets, a.countdowns, a.metrics)
	ledgerService := service.NewLedgerService(ledgerRepo, userRepo, cfg.ExchangeRate, a.metrics)

	if cfg.AdminPassword != "" {
		if err := userService.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword); err != nil {
			a.closeStores()
			return nil, fmt.Errorf("failed to seed admin account: %w", err)
		}
	} else {
		logger.Log.Warn("ADMIN_PASSWORD is empty, admin account not seeded")
	}

	issuer := auth.NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL)
	handler := handlers.NewHandler(userService, a.questions, ledgerService, issuer, revoker)
	r := handlers.NewRouter(handler, handlers.RouterConfig{
		RequestTimeout: cfg.RequestTimeout,
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
	}, a.metrics)

	a.server = &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}
	return a, nil
}

func newBuckets(ctx context.Context, cfg *config.Config) (service.Buckets, error) {
	buckets := service.Buckets{
		Questions:     storage.Unavailable{},
		Answers:       storage.Unavailable{},
		UploadTimeout: cfg.UploadTimeout,
	}
	if !cfg.StorageEnabled() {
		logger.Log.Warn("B2 credentials are not set, file uploads are disabled")
		return buckets, nil
	}

	client, err := storage.NewB2Client(ctx, cfg.B2AccountID, cfg.B2ApplicationKey)
	if err != nil {
		return buckets, fmt.Errorf("failed to authorize b2 account: %w", err)
	}
	if buckets.Questions, err = storage.NewB2Bucket(ctx, client, cfg.B2QuestionBucket); err != nil {
		return buckets, err
	}
	if buckets.Answers, err = storage.NewB2Bucket(ctx, client, cfg.B2AnswerBucket); err != nil {
		return buckets, err
	}
	return buckets, nil
}

// Run resumes the countdowns of assigned questions and starts serving.
func (a *App) Run(ctx context.Context) error {
	if err := a.questions.ResumeCountdowns(ctx); err != nil {
		return fmt.Errorf("failed to resume countdowns: %w", err)
	}

	bgCtx, cancel := context.WithCancel(context.Background())
	a.stop = cancel
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.recordPoolStats(bgCtx)
	}()

	go func() {
		logger.Log.Info("starting server", zap.String("address", a.cfg.RunAddress))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) recordPoolStats(ctx context.Context) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()
	for {
		a.metrics.RecordDBPoolStats(a.db)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if a.stop != nil {
		a.stop()
	}
	a.wg.Wait()

	logger.Log.Info("stopping countdown timers...")
	a.countdowns.Shutdown()

	return a.closeStores()
}

func (a *App) closeStores() error {
	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Log.Error("failed to close redis client", zap.Error(err))
			errs = append(errs, err)
		}
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
