package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/cricketlabs/livestats/external/cricbuzz"
	"github.com/cricketlabs/livestats/internal/config"
	"github.com/cricketlabs/livestats/internal/domain/analytics"
	"github.com/cricketlabs/livestats/internal/domain/match"
	"github.com/cricketlabs/livestats/internal/domain/player"
	"github.com/cricketlabs/livestats/internal/domain/team"
	"github.com/cricketlabs/livestats/internal/domain/venue"
	cacherepo "github.com/cricketlabs/livestats/internal/infrastructure/repository/cache"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/postgres"
	"github.com/cricketlabs/livestats/internal/interfaces/httpapi"
	basecache "github.com/cricketlabs/livestats/internal/platform/cache"
	"github.com/cricketlabs/livestats/internal/platform/logging"
	"github.com/cricketlabs/livestats/internal/platform/resilience"
	"github.com/cricketlabs/livestats/internal/usecase"
)

// Application bundles the wired HTTP server with the services the entrypoint
// needs outside the request path.
type Application struct {
	Server   *http.Server
	FeedSync *usecase.FeedSyncService
	Close    func(context.Context) error
}

func NewApplication(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		db            *sqlx.DB
		matchRepo     match.Repository
		playerRepo    player.Repository
		teamRepo      team.Repository
		venueRepo     venue.Repository
		analyticsRepo analytics.Repository
		readiness     func(context.Context) error
	)

	if cfg.DBURL == "" {
		logger.Info("db url empty, using in-memory repositories")
		matchRepo = memory.NewMatchRepository()
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		venueRepo = memory.NewVenueRepository(memory.SeedVenues())
		analyticsRepo = memory.NewAnalyticsRepository()
	} else {
		dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		conn, err := otelsqlx.Connect("postgres", dsn,
			otelsql.WithDBName(dbNameFromURL(dsn)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := postgres.Bootstrap(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
		if err := postgres.BootstrapSeed(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("seed reference data: %w", err)
		}

		db = conn
		matchRepo = postgres.NewMatchRepository(conn)
		playerRepo = postgres.NewPlayerRepository(conn)
		teamRepo = postgres.NewTeamRepository(conn)
		venueRepo = postgres.NewVenueRepository(conn)
		analyticsRepo = postgres.NewAnalyticsRepository(conn)
		readiness = conn.PingContext
	}

	if cfg.CacheEnabled {
		analyticsRepo = cacherepo.NewAnalyticsRepository(analyticsRepo, basecache.NewStore(cfg.CacheTTL))
	}

	feedClient := cricbuzz.NewClient(cricbuzz.ClientConfig{
		BaseURL:    cfg.CricbuzzBaseURL,
		APIKey:     cfg.CricbuzzAPIKey,
		Host:       cfg.CricbuzzHost,
		Timeout:    cfg.CricbuzzTimeout,
		MaxRetries: cfg.CricbuzzMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CricbuzzCircuitEnabled,
			FailureThreshold: cfg.CricbuzzCircuitFailures,
			OpenTimeout:      cfg.CricbuzzCircuitOpenFor,
			HalfOpenMaxReq:   cfg.CricbuzzCircuitHalfOpenReq,
		},
	})

	feedSync := usecase.NewFeedSyncService(feedClient, cricbuzz.Normalize, matchRepo, logger)

	handler := httpapi.NewHandler(
		feedSync,
		usecase.NewMatchService(matchRepo),
		usecase.NewPlayerService(playerRepo),
		usecase.NewTeamService(teamRepo),
		usecase.NewVenueService(venueRepo),
		usecase.NewAnalyticsService(analyticsRepo),
		usecase.NewDashboardService(playerRepo, teamRepo, venueRepo, matchRepo, feedSync),
		usecase.NewExportService(playerRepo),
		readiness,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &Application{
		Server:   server,
		FeedSync: feedSync,
		Close: func(context.Context) error {
			if db != nil {
				return db.Close()
			}
			return nil
		},
	}, nil
}
