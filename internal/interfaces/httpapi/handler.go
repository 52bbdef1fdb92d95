package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

type Handler struct {
	stockService     *usecase.StockService
	quoteService     *usecase.QuoteService
	leagueService    *usecase.LeagueService
	standingsService *usecase.StandingsService
	rosterService    *usecase.RosterService
	dashboardService *usecase.DashboardService
	scoringService   *usecase.ScoringService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	stockService *usecase.StockService,
	quoteService *usecase.QuoteService,
	leagueService *usecase.LeagueService,
	standingsService *usecase.StandingsService,
	rosterService *usecase.RosterService,
	dashboardService *usecase.DashboardService,
	scoringService *usecase.ScoringService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		stockService:     stockService,
		quoteService:     quoteService,
		leagueService:    leagueService,
		standingsService: standingsService,
		rosterService:    rosterService,
		dashboardService: dashboardService,
		scoringService:   scoringService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
