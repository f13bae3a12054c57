package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/eulerq-candidate-test/internal/adapter/sqlite"
	submissionrepo "github.com/heartmarshall/eulerq-candidate-test/internal/adapter/sqlite/submission"
	"github.com/heartmarshall/eulerq-candidate-test/internal/config"
	"github.com/heartmarshall/eulerq-candidate-test/internal/metrics"
	"github.com/heartmarshall/eulerq-candidate-test/internal/questionbank"
	"github.com/heartmarshall/eulerq-candidate-test/internal/service/submission"
	"github.com/heartmarshall/eulerq-candidate-test/internal/transport/middleware"
	"github.com/heartmarshall/eulerq-candidate-test/internal/transport/rest"
	"github.com/heartmarshall/eulerq-candidate-test/internal/transport/web"
)

// limiterCleanupInterval is how often idle rate-limit buckets are evicted.
const limiterCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, opens the
// store, wires services and handlers, and serves HTTP until ctx is
// cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.Path),
	)

	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close store", slog.String("error", err.Error()))
		}
	}()

	bank, err := questionbank.Load(cfg.Assessment.QuestionsPath)
	if err != nil {
		return err
	}

	limiter := newSubmitLimiter(cfg.Server)
	if limiter != nil {
		defer limiter.Stop()
	}

	handler, err := buildHandler(cfg, logger, db, bank, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// newSubmitLimiter returns nil when submit throttling is off, so no cleanup
// goroutine runs.
func newSubmitLimiter(cfg config.ServerConfig) *middleware.RateLimiter {
	if cfg.SubmitRatePerMinute <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(limiterCleanupInterval)
}

func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	bank *questionbank.Bank,
	limiter *middleware.RateLimiter,
) (http.Handler, error) {
	m := metrics.New()

	repo := submissionrepo.New(db)
	svc := submission.NewService(logger, repo, m, cfg.Assessment.AnonymousName)

	pages, err := web.NewRenderer(bank, web.RendererConfig{
		Title:         cfg.Assessment.Title,
		AutosaveEvery: cfg.Assessment.AutosaveEvery,
	})
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	deps := RouterDeps{
		Logger:          logger,
		Web:             web.NewHandler(svc, pages, cfg.Assessment.CookieName, logger),
		Submissions:     rest.NewSubmissionHandler(svc, logger),
		Health:          rest.NewHealthHandler(db, repo, BuildVersion()),
		Limiter:         limiter,
		SubmitPerMin:    cfg.Server.SubmitRatePerMinute,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		CandidateCookie: cfg.Assessment.CookieName,
	}
	if cfg.Server.MetricsEnabled {
		deps.Metrics = m
	}

	return NewRouter(deps), nil
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully
// within shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
