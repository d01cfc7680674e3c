// Package server wires the application together: config, database,
// migrations, services, and the HTTP endpoint, with graceful shutdown on
// SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ganeshpodishetti/portfolio-api/internal/logging"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/auth"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/config"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/httpapi"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/repomanager"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	tokens, err := auth.NewTokenService(cfg.SecretKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	assets := storage.NewAssetStorage(cfg)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:         tokens,
		Auth:           services.NewAuthService(db, repos, tokens, cfg, logger),
		Education:      services.NewEducationService(db, repos, logger),
		Experiences:    services.NewExperienceService(db, repos, logger),
		Projects:       services.NewProjectService(db, repos, logger),
		Skills:         services.NewSkillService(db, repos, logger),
		Messages:       services.NewMessageService(db, repos, logger),
		SocialLinks:    services.NewSocialLinkService(db, repos, logger),
		Assets:         assets,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, router, logger)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err)
	}
}
