package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/feed/sync", handler.SyncFeed)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/recent", handler.ListRecentMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/export", handler.ExportPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)

	mux.HandleFunc("GET /v1/venues", handler.ListVenues)
	mux.HandleFunc("GET /v1/venues/{venueID}", handler.GetVenue)
	mux.HandleFunc("POST /v1/venues", handler.CreateVenue)
	mux.HandleFunc("PUT /v1/venues/{venueID}", handler.UpdateVenue)
	mux.HandleFunc("DELETE /v1/venues/{venueID}", handler.DeleteVenue)

	mux.HandleFunc("GET /v1/analytics/queries", handler.ListAnalyticsQueries)
	mux.HandleFunc("GET /v1/analytics/queries/{queryID}", handler.RunAnalyticsQuery)

	mux.HandleFunc("GET /v1/dashboard/summary", handler.GetDashboardSummary)
}
