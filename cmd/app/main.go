package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bilmem-net/ai-hediye/internal/analytics"
	"github.com/bilmem-net/ai-hediye/internal/catalog"
	"github.com/bilmem-net/ai-hediye/internal/config"
	"github.com/bilmem-net/ai-hediye/internal/enrich"
	"github.com/bilmem-net/ai-hediye/internal/feedback"
	"github.com/bilmem-net/ai-hediye/internal/infrastructure/database/postgres"
	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/recommend"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

const sweepInterval = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	store, closeStore, err := openWizardStore(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer closeStore()

	products, err := openCatalog(ctx, db)
	if err != nil {
		return err
	}

	tracker, err := analytics.New(analytics.Config{
		Debounce:   time.Second,
		MaxEvents:  1000,
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		return fmt.Errorf("failed to start analytics: %w", err)
	}
	defer tracker.Close()

	wizards := wizard.NewService(store)
	wizards.OnChange(func(_ string, st wizard.State) {
		if st.CurrentStep != wizard.MaxStep || !st.Complete() {
			return
		}
		count := len(st.Interests)
		_, _ = tracker.Track(analytics.WizardComplete, &analytics.Params{
			InterestCount: &count,
			BudgetBucket:  analytics.BudgetBucket(st.Budget),
		})
	})

	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		logging.Warn().Msg("JWT_SECRET not set, using an ephemeral secret")
	}

	var mailer feedback.Mailer
	if cfg.Feedback.Configured() {
		mailer = feedback.NewSMTPMailer(cfg.Feedback)
	}
	feedbackService := feedback.NewService(cfg.Feedback, mailer, !cfg.IsDevelopment())
	go sweep(ctx, feedbackService.Limiter())

	app := newApp(services{
		SiteURL:            cfg.SiteURL,
		RecommendPerMinute: cfg.RecommendRateLimit,
		Sessions:           wizard.NewSessions(secret, cfg.SessionTTL),
		Wizards:            wizards,
		Catalog:            products,
		Recommend:          recommend.NewService(newGenerator(ctx, cfg), newPipeline(cfg), products),
		Feedback:           feedbackService,
		Tracker:            tracker,
	})

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("listening")
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logging.Info().Msg("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}

func openWizardStore(ctx context.Context, cfg config.Config, db *sql.DB) (wizard.Store, func(), error) {
	switch cfg.WizardStore {
	case "postgres":
		if db == nil {
			return nil, nil, errors.New("postgres wizard store needs DATABASE_URL")
		}
		s := wizard.NewPostgresStore(db)
		if err := s.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case "badger":
		s, err := wizard.OpenBadgerStore(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logging.Error().Err(err).Msg("failed to close badger store")
			}
		}, nil
	default:
		return wizard.NewInMemoryStore(), func() {}, nil
	}
}

func openCatalog(ctx context.Context, db *sql.DB) (*catalog.Service, error) {
	if db == nil {
		return catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()))
	}
	repo := catalog.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx, catalog.Seed()); err != nil {
		return nil, err
	}
	return catalog.NewService(repo)
}

// newGenerator returns nil when no key is configured; the recommend service
// then answers with the authorization message.
func newGenerator(ctx context.Context, cfg config.Config) recommend.Generator {
	if cfg.GoogleAPIKey == "" {
		logging.Warn().Msg("GOOGLE_API_KEY not set, AI recommendations disabled")
		return nil
	}
	g, err := recommend.NewGeminiGenerator(ctx, cfg.GoogleAPIKey, cfg.GeminiModel, recommend.DefaultBreakerConfig())
	if err != nil {
		logging.Error().Err(err).Msg("failed to create gemini client")
		return nil
	}
	return g
}

func newPipeline(cfg config.Config) *enrich.Pipeline {
	providers := enrich.ProviderConfig{
		SerpAPIKey: cfg.SerpAPIKey,
		CSEAPIKey:  cfg.GoogleCSEAPIKey,
		CSECX:      cfg.GoogleCSECX,
	}
	var opts []enrich.Option
	if cfg.LookupRate > 0 {
		opts = append(opts, enrich.WithRateLimit(cfg.LookupRate))
	}
	return enrich.NewPipeline(enrich.NewImageSearcher(providers), enrich.NewPriceProvider(providers), opts...)
}

func sweep(ctx context.Context, l *feedback.Limiter) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
