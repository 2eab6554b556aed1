package httpapi

import (
	"net/http"

	"github.com/afthonia/elo-dashboard/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, m *metrics.Manager) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.Handle("GET /metrics", m.Handler())
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerName}/history", handler.GetPlayerHistory)
	mux.HandleFunc("POST /v1/compare", handler.ComparePlayers)
}
