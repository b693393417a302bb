package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/callhistory-backend/internal/config"
	"github.com/heartmarshall/callhistory-backend/internal/transport/middleware"
	"github.com/heartmarshall/callhistory-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// handlers groups the REST handlers mounted by newRouter.
type handlers struct {
	health      *rest.HealthHandler
	calls       *rest.CallHandler
	sync        *rest.SyncHandler
	trash       *rest.TrashHandler
	preview     *rest.PreviewHandler
	assignments *rest.AssignmentHandler
}

// newRouter mounts health checks and metrics publicly and everything under /api/
// behind operator auth. Sync and preview are additionally rate limited.
func newRouter(
	logger *slog.Logger,
	cfg *config.Config,
	h handlers,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	heavy := limiter.Limit(cfg.Server.RateLimit)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/v1/calls", h.calls.List)
	api.HandleFunc("GET /api/v1/calls/stats", h.calls.Stats)
	api.HandleFunc("GET /api/v1/calls/agents", h.calls.Agents)
	api.HandleFunc("GET /api/v1/calls/{id}", h.calls.Get)
	api.HandleFunc("GET /api/v1/calls/{id}/export", h.calls.Export)
	api.HandleFunc("DELETE /api/v1/calls/{id}", h.calls.Delete)
	api.HandleFunc("POST /api/v1/calls/{id}/reclean", h.calls.Reclean)
	api.Handle("POST /api/v1/calls/sync", heavy(http.HandlerFunc(h.sync.Sync)))
	api.HandleFunc("POST /api/v1/calls/translate-reasons", h.sync.TranslateReasons)
	api.HandleFunc("GET /api/v1/trash", h.trash.List)
	api.HandleFunc("GET /api/v1/trash/{id}", h.trash.Get)
	api.HandleFunc("POST /api/v1/trash/{id}/restore", h.trash.Restore)
	api.HandleFunc("POST /api/v1/trash/sweep", h.trash.Sweep)
	api.Handle("POST /api/v1/preview", heavy(http.HandlerFunc(h.preview.Preview)))
	api.HandleFunc("GET /api/v1/agent-assignments", h.assignments.List)
	api.HandleFunc("POST /api/v1/agent-assignments", h.assignments.Save)
	api.HandleFunc("GET /api/v1/agent-assignments/{id}", h.assignments.Get)
	api.HandleFunc("DELETE /api/v1/agent-assignments/{id}", h.assignments.Delete)

	mux.Handle("/api/", middleware.Auth(tokens)(api))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
