package httpapi

import (
	"fmt"
	"net/http"

	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}
