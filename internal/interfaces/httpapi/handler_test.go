package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/tickerdraft/tickerdraft/internal/domain/user"
	"github.com/tickerdraft/tickerdraft/internal/infrastructure/repository/memory"
	"github.com/tickerdraft/tickerdraft/internal/platform/cache"
	"github.com/tickerdraft/tickerdraft/internal/platform/id"
	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

type stubProvider struct {
	quotes map[string]usecase.Quote
}

func (p *stubProvider) FetchPrevDay(_ context.Context, ticker string) (usecase.Quote, error) {
	q, ok := p.quotes[ticker]
	if !ok {
		return usecase.Quote{}, fmt.Errorf("%w: no data for %s", usecase.ErrNotFound, ticker)
	}
	return q, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	stockRepo := memory.NewStockRepository(memory.SeedStocks())
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedMemberships())
	rosterRepo := memory.NewRosterRepository(memory.SeedRosterSlots(), id.NewRandomGenerator())
	scoringRepo := memory.NewScoringRepository(id.NewRandomGenerator())
	matchupRepo := memory.NewMatchupRepository(memory.SeedMatchups())

	provider := &stubProvider{quotes: map[string]usecase.Quote{
		"AAPL": {Ticker: "AAPL", Open: 100, High: 106, Low: 99, Close: 105, Volume: 1000, ChangePct: 5},
		"TSLA": {Ticker: "TSLA", Open: 200, High: 205, Low: 178, Close: 180, Volume: 2000, ChangePct: -10},
		"MSFT": {Ticker: "MSFT", Open: 400, High: 410, Low: 398, Close: 408, Volume: 1500, ChangePct: 2},
	}}

	quoteService := usecase.NewQuoteService(provider, cache.NewStore(time.Minute), 2)
	standingsService := usecase.NewStandingsService(leagueRepo, scoringRepo, matchupRepo)
	handler := NewHandler(
		usecase.NewStockService(stockRepo),
		quoteService,
		usecase.NewLeagueService(leagueRepo, matchupRepo),
		standingsService,
		usecase.NewRosterService(leagueRepo, rosterRepo),
		usecase.NewDashboardService(leagueRepo, rosterRepo, stockRepo, standingsService),
		usecase.NewScoringService(rosterRepo, stockRepo, scoringRepo, quoteService),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	verifier := &stubVerifier{principal: user.Principal{UserID: memory.UserIDAlice, Email: "alice@example.com"}}
	return NewRouter(handler, verifier, slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"*"}, "", false)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer test-token")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if err := sonic.Unmarshal(envelope.Data, target); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_ListStocksFiltersBySector(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/stocks?sector=Technology", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var items []stockDTO
	decodeData(t, rec, &items)
	if len(items) == 0 {
		t.Fatalf("expected technology stocks, got none")
	}
	for _, item := range items {
		if item.Sector != "Technology" {
			t.Fatalf("expected only Technology stocks, got %q", item.Sector)
		}
	}
}

func TestRouter_GetStock(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/stocks/stk-aapl", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var item stockDTO
	decodeData(t, rec, &item)
	if item.Ticker != "AAPL" {
		t.Fatalf("unexpected stock %+v", item)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/stocks/stk-missing", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_ResolveLeagueByInviteCode(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/leagues?inviteCode=WSL-2026", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var item leagueDTO
	decodeData(t, rec, &item)
	if item.ID != memory.LeagueIDWallStreetBets {
		t.Fatalf("unexpected league %+v", item)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/leagues?inviteCode=NOPE-0000", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/leagues", "", false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without invite code, got %d", rec.Code)
	}
}

func TestRouter_GetDailyPrices(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/prices?tickers=AAPL,TSLA,UNKNOWN", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var items map[string]quoteDTO
	decodeData(t, rec, &items)
	if len(items) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(items))
	}
	if items["AAPL"].ChangePct != 5 {
		t.Fatalf("expected AAPL changePct 5, got %v", items["AAPL"].ChangePct)
	}
	if items["AAPL"].Change != 5 {
		t.Fatalf("expected AAPL change 5, got %v", items["AAPL"].Change)
	}
	if items["TSLA"].Change != -20 {
		t.Fatalf("expected TSLA change -20, got %v", items["TSLA"].Change)
	}
	if _, ok := items["UNKNOWN"]; ok {
		t.Fatalf("unknown ticker must be absent from the result")
	}

	var raw map[string]map[string]any
	decodeData(t, rec, &raw)
	for _, field := range []string{"close", "open", "high", "low", "volume", "change", "changePct"} {
		if _, ok := raw["AAPL"][field]; !ok {
			t.Fatalf("expected %q field in quote payload, got %v", field, raw["AAPL"])
		}
	}
}

func TestRouter_GetDailyPricesWithoutTickers(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/prices", "", false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_GetLeague(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDWallStreetBets, "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var item leagueDTO
	decodeData(t, rec, &item)
	if item.Name != "Wall Street Legends" {
		t.Fatalf("unexpected league name %q", item.Name)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/leagues/league-unknown", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown league, got %d", rec.Code)
	}
}

func TestRouter_GetLeagueStandings(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/leagues/"+memory.LeagueIDWallStreetBets+"/standings", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var rows []standingsRowDTO
	decodeData(t, rec, &rows)
	if len(rows) != 4 {
		t.Fatalf("expected 4 standings rows, got %d", len(rows))
	}
	if rows[0].Rank != 1 {
		t.Fatalf("expected first row rank 1, got %d", rows[0].Rank)
	}
}

func TestRouter_ListMatchupsByWeek(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/leagues/"+memory.LeagueIDWallStreetBets+"/matchups?week=1", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var items []matchupDTO
	decodeData(t, rec, &items)
	if len(items) != 2 {
		t.Fatalf("expected 2 matchups in week 1, got %d", len(items))
	}
	for _, item := range items {
		if item.Week != 1 {
			t.Fatalf("expected only week 1 matchups, got week %d", item.Week)
		}
	}
}

func TestRouter_DashboardRequiresAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/dashboard", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a token, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/dashboard", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with a token, got %d", rec.Code)
	}

	var dashboard dashboardDTO
	decodeData(t, rec, &dashboard)
	if dashboard.UserID != memory.UserIDAlice {
		t.Fatalf("expected dashboard for %q, got %q", memory.UserIDAlice, dashboard.UserID)
	}
	if len(dashboard.Leagues) != 2 {
		t.Fatalf("expected 2 league entries, got %d", len(dashboard.Leagues))
	}
}

func TestRouter_RosterAddConflictAndDrop(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	base := "/v1/leagues/" + memory.LeagueIDWallStreetBets + "/roster"

	rec := doRequest(t, router, http.MethodPost, base, `{"stockId":"stk-etsy"}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// TSLA is already on Bob's roster; the league-wide uniqueness makes
	// this a conflict, not a validation failure.
	rec = doRequest(t, router, http.MethodPost, base, `{"stockId":"stk-tsla"}`, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, base+"/stk-etsy", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, base+"/stk-etsy", "", true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for a second drop, got %d", rec.Code)
	}
}

func TestRouter_ScoreJob(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/score", `{"week":3}`, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result runScoreJobResponse
	decodeData(t, rec, &result)
	if result.Week != 3 {
		t.Fatalf("expected week 3, got %d", result.Week)
	}
	// Only AAPL, TSLA and MSFT have quotes; the other seeded holdings are
	// counted as skipped.
	if result.Scored != 3 {
		t.Fatalf("expected 3 scored rows, got %d", result.Scored)
	}
	if result.Skipped == 0 {
		t.Fatalf("expected skipped holdings for tickers without quotes")
	}
}

func TestRouter_ScoreJobRequiresWeek(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodPost, "/v1/internal/jobs/score", `{}`, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without a week, got %d", rec.Code)
	}
}
