package httpapi

import (
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/stats-aggregator/internal/platform/logging"
	"github.com/riskibarqy/stats-aggregator/internal/usecase"
)

var errRouteNotFound = crerr.Wrap(usecase.ErrNotFound, "route not found")

type RouterOptions struct {
	ServiceName        string
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "stats-aggregator"
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerStatsRoutes(mux, handler)

	return RequestTracing(opts.ServiceName, RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(r.Context(), w, errRouteNotFound)
}
