package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

type runScoreJobRequest struct {
	Week int `json:"week" validate:"required,gt=0"`
}

type runScoreJobResponse struct {
	Week    int              `json:"week"`
	Scored  int              `json:"scored"`
	Skipped int              `json:"skipped"`
	Scores  []weeklyScoreDTO `json:"scores"`
}

func (h *Handler) RunScoreJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScoreJob")
	defer span.End()

	var req runScoreJobRequest
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

	result, err := h.scoringService.ScoreWeek(ctx, req.Week)
	if err != nil {
		h.logger.ErrorContext(ctx, "score job failed", "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	scores := make([]weeklyScoreDTO, 0, len(result.Scores))
	for _, s := range result.Scores {
		scores = append(scores, weeklyScoreToDTO(s))
	}

	h.logger.InfoContext(ctx, "score job finished",
		"week", result.Week,
		"scored", result.Scored,
		"skipped", result.Skipped,
	)

	writeSuccess(ctx, w, http.StatusOK, runScoreJobResponse{
		Week:    result.Week,
		Scored:  result.Scored,
		Skipped: result.Skipped,
		Scores:  scores,
	})
}
