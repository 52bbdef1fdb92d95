package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	l, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(l))
}

// ResolveLeague looks a league up by its invite code, the handle shared with
// prospective members.
func (h *Handler) ResolveLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveLeague")
	defer span.End()

	inviteCode := strings.TrimSpace(r.URL.Query().Get("inviteCode"))
	l, err := h.leagueService.GetLeagueByInviteCode(ctx, inviteCode)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve league failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(l))
}

func (h *Handler) ListLeagueMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMembers")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	members, err := h.leagueService.ListMembers(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league members failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]membershipDTO, 0, len(members))
	for _, m := range members {
		items = append(items, membershipToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	rows, err := h.standingsService.GetLeagueStandings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingsRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingsRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagueMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMatchups")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	week, err := parseWeekQuery(r.URL.Query().Get("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchups, err := h.leagueService.ListMatchups(ctx, leagueID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list league matchups failed", "league_id", leagueID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchupDTO, 0, len(matchups))
	for _, m := range matchups {
		items = append(items, matchupToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// parseWeekQuery maps an absent week parameter to zero, which the service
// resolves to the league's current week.
func parseWeekQuery(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	week, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: week must be an integer, got %q", usecase.ErrInvalidInput, raw)
	}

	return week, nil
}
