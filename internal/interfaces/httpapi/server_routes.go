package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("GET /", notFound)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /api-docs/openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
	mux.HandleFunc("GET /swagger-ui", handler.SwaggerUI)
	mux.HandleFunc("GET /swagger-ui/", handler.SwaggerUI)
	mux.HandleFunc("GET /{$}", handler.RedirectToDocs)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/match/stats", handler.GetMatchStats)
	mux.HandleFunc("GET /api/match/stats/batch", handler.GetMatchStatsBatch)
}
