package app

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/tickerdraft/tickerdraft/external/polygon"
	"github.com/tickerdraft/tickerdraft/internal/config"
	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
	"github.com/tickerdraft/tickerdraft/internal/infrastructure/account/gotrue"
	"github.com/tickerdraft/tickerdraft/internal/infrastructure/repository/memory"
	"github.com/tickerdraft/tickerdraft/internal/infrastructure/repository/postgres"
	"github.com/tickerdraft/tickerdraft/internal/interfaces/httpapi"
	"github.com/tickerdraft/tickerdraft/internal/platform/cache"
	idgen "github.com/tickerdraft/tickerdraft/internal/platform/id"
	"github.com/tickerdraft/tickerdraft/internal/platform/logging"
	"github.com/tickerdraft/tickerdraft/internal/platform/resilience"
	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

type repositories struct {
	stock   stock.Repository
	league  league.Repository
	roster  roster.Repository
	scoring scoring.Repository
	matchup matchup.Repository
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	provider := polygon.NewClient(polygon.ClientConfig{
		BaseURL:    cfg.PolygonBaseURL,
		APIKey:     cfg.PolygonAPIKey,
		Timeout:    cfg.PolygonTimeout,
		MaxRetries: cfg.PolygonMaxRetries,
		Logger:     logging.Default(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PolygonCircuitEnabled,
			FailureThreshold: cfg.PolygonCircuitFailureCount,
			OpenTimeout:      cfg.PolygonCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PolygonCircuitHalfOpenMaxReq,
		},
	})

	quoteSvc := usecase.NewQuoteService(provider, cache.NewStore(cfg.CacheTTL), cfg.QuoteWorkers)
	standingsSvc := usecase.NewStandingsService(repos.league, repos.scoring, repos.matchup)

	handler := httpapi.NewHandler(
		usecase.NewStockService(repos.stock),
		quoteSvc,
		usecase.NewLeagueService(repos.league, repos.matchup),
		standingsSvc,
		usecase.NewRosterService(repos.league, repos.roster),
		usecase.NewDashboardService(repos.league, repos.roster, repos.stock, standingsSvc),
		usecase.NewScoringService(repos.roster, repos.stock, repos.scoring, quoteSvc),
		logger,
	)

	verifier := gotrue.NewClient(
		&http.Client{Timeout: cfg.GoTrueTimeout},
		cfg.GoTrueBaseURL,
		cfg.GoTrueAnonKey,
		logger,
	)

	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.CronSecret, cfg.IsProd())

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildRepositories picks the persistence backend. An empty DB_URL means the
// seeded in-memory stores, which keeps local dev free of infrastructure.
func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories with seed data")
		ids := idgen.NewRandomGenerator()
		return repositories{
			stock:   memory.NewStockRepository(memory.SeedStocks()),
			league:  memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedMemberships()),
			roster:  memory.NewRosterRepository(memory.SeedRosterSlots(), ids),
			scoring: memory.NewScoringRepository(ids),
			matchup: memory.NewMatchupRepository(memory.SeedMatchups()),
		}, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return repositories{}, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("using postgres repositories", "db", dbNameFromURL(dsn))
	return repositories{
		stock:   postgres.NewStockRepository(db),
		league:  postgres.NewLeagueRepository(db),
		roster:  postgres.NewRosterRepository(db),
		scoring: postgres.NewScoringRepository(db),
		matchup: postgres.NewMatchupRepository(db),
	}, nil
}
