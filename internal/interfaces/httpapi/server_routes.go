package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stocks", handler.ListStocks)
	mux.HandleFunc("GET /v1/stocks/{stockID}", handler.GetStock)
	mux.HandleFunc("GET /v1/prices", handler.GetDailyPrices)
	mux.HandleFunc("GET /v1/leagues", handler.ResolveLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/members", handler.ListLeagueMembers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matchups", handler.ListLeagueMatchups)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
	mux.Handle("GET /v1/leagues/{leagueID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.GetMyRoster)))
	mux.Handle("POST /v1/leagues/{leagueID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.AddRosterStock)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/roster/{stockID}", RequireAuth(verifier, http.HandlerFunc(handler.DropRosterStock)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, cronSecret string, enforceCronSecret bool) {
	mux.Handle("POST /v1/internal/jobs/score", RequireCronSecret(cronSecret, enforceCronSecret, http.HandlerFunc(handler.RunScoreJob)))
}
