package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

type addRosterStockRequest struct {
	StockID string `json:"stockId" validate:"required"`
}

func (h *Handler) GetMyRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyRoster")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := r.PathValue("leagueID")
	slots, err := h.rosterService.GetRoster(ctx, leagueID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, rosterSlotToDTO(slot))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddRosterStock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRosterStock")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req addRosterStockRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	defer func() { _ = r.Body.Close() }()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	slot, err := h.rosterService.AddStock(ctx, leagueID, principal.UserID, req.StockID)
	if err != nil {
		h.logger.WarnContext(ctx, "add roster stock failed", "league_id", leagueID, "user_id", principal.UserID, "stock_id", req.StockID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterSlotToDTO(slot))
}

func (h *Handler) DropRosterStock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DropRosterStock")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := r.PathValue("leagueID")
	stockID := r.PathValue("stockID")
	if err := h.rosterService.DropStock(ctx, leagueID, principal.UserID, stockID); err != nil {
		h.logger.WarnContext(ctx, "drop roster stock failed", "league_id", leagueID, "user_id", principal.UserID, "stock_id", stockID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "dropped"})
}
