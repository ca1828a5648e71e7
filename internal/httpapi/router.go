// Package httpapi is the thin HTTP wrapper around the bookkeeping core: it
// parses requests, calls one workflow or resolver, and forwards the result.
package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"brothertrans/backend/internal/adapters/impexp"
	"brothertrans/backend/internal/adapters/persistence"
	"brothertrans/backend/internal/adapters/telemetry"
	"brothertrans/backend/internal/ports"
	"brothertrans/backend/internal/service"
)

const maxImportBodyBytes int64 = 8 << 20

type API struct {
	service  *service.Service
	snapshot ports.ImportExport
	cors     corsPolicy
	static   http.Handler
	metrics  http.Handler
}

// NewRouter wires the full adapter stack from runtime config: prometheus
// telemetry, the file-backed collection store, the workflow service, the
// snapshot adapter, and static file serving for the frontend.
func NewRouter(config RuntimeConfig, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := prometheus.NewRegistry()
	tele, err := telemetry.NewPrometheusTelemetry(registry)
	if err != nil {
		return nil, fmt.Errorf("register telemetry: %w", err)
	}
	store, err := persistence.NewStore(config.DataDir, logger, tele)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	svc, err := service.New(store, tele)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	snapshot, err := impexp.NewSnapshot(store)
	if err != nil {
		return nil, fmt.Errorf("create snapshot adapter: %w", err)
	}

	api := &API{
		service:  svc,
		snapshot: snapshot,
		cors:     newCORSPolicy(config),
		static:   http.FileServer(http.Dir(config.PublicDir)),
		metrics:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return newRequestLogger(api, logger), nil
}

// NewRouterWithDependencies builds a bare router around pre-built
// collaborators. Used by tests.
func NewRouterWithDependencies(svc *service.Service, snapshot ports.ImportExport, config RuntimeConfig) http.Handler {
	return &API{
		service:  svc,
		snapshot: snapshot,
		cors:     newCORSPolicy(config),
	}
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w, r, a.cors)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.URL.Path == "/healthz" {
		healthz(w, r)
		return
	}
	if r.URL.Path == "/metrics" && a.metrics != nil {
		a.metrics.ServeHTTP(w, r)
		return
	}

	if !strings.HasPrefix(r.URL.Path, "/api/") {
		if r.Method == http.MethodGet && a.static != nil {
			a.static.ServeHTTP(w, r)
			return
		}
		notFound(w)
		return
	}

	segments := splitPath(r.URL.Path)
	switch {
	case isExactRoute(segments, "api", "units"):
		a.handleListUnits(w, r)
	case len(segments) == 4 && segments[0] == "api" && segments[1] == "units" && segments[2] == "detail":
		a.handleUnitDetail(w, r, segments[3])
	case isExactRoute(segments, "api", "services"):
		a.handleListServices(w, r)
	case isExactRoute(segments, "api", "transactions"):
		a.handleListTransactions(w, r)
	case isExactRoute(segments, "api", "parts"):
		a.handleListParts(w, r)
	case isExactRoute(segments, "api", "service"):
		a.handleRecordService(w, r)
	case isExactRoute(segments, "api", "workshop", "sale"):
		a.handleRecordSale(w, r)
	case isExactRoute(segments, "api", "export"):
		a.handleExport(w, r)
	case isExactRoute(segments, "api", "import"):
		a.handleImport(w, r)
	default:
		notFound(w)
	}
}
