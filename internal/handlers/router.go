package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akozadaev/commdist_analytics/internal/observability"
)

// NewRouter регистрирует маршруты API. Каждый маршрут учитывается в метриках по своему шаблону.
func NewRouter(h *Handlers, metrics *observability.Metrics) *mux.Router {
	router := mux.NewRouter()

	handle := func(path string, fn http.HandlerFunc, method string) {
		router.Handle(path, metrics.WrapHandler(path, fn)).Methods(method)
	}

	handle("/health", h.HealthCheck, http.MethodGet)
	handle("/api/districts", h.ListDistricts, http.MethodGet)
	handle("/api/districts/top", h.TopDistricts, http.MethodGet)
	handle("/api/districts/{code:[0-9]+}", h.GetDistrict, http.MethodGet)
	handle("/api/districts/{code:[0-9]+}/service", h.GetServiceScore, http.MethodGet)
	handle("/api/regions/{regionCode:[0-9]+}/service", h.GetRegionServiceScores, http.MethodGet)
	handle("/api/regions/{regionCode:[0-9]+}/rank", h.GetRegionRank, http.MethodGet)
	handle("/api/sales/{code:[0-9]+}/summary", h.GetSalesSummary, http.MethodGet)
	handle("/api/sales/graph/cache", h.InvalidateSalesGraphs, http.MethodDelete)
	handle("/api/sales/graph/{kind}", h.GetSalesGraph, http.MethodGet)
	handle("/api/services", h.ListServices, http.MethodGet)

	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	return router
}
