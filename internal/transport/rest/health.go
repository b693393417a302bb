package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// syncTracker reports the outcome of the most recent scheduled sync.
// A zero time means no run has finished yet.
type syncTracker interface {
	LastSync() (at time.Time, err error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	sync    syncTracker
	version string
}

// NewHealthHandler creates a HealthHandler. sync may be nil when the
// scheduler is disabled.
func NewHealthHandler(db dbPinger, sync syncTracker, version string) *HealthHandler {
	return &HealthHandler{db: db, sync: sync, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string     `json:"status"`
	Latency string     `json:"latency,omitempty"`
	LastRun *time.Time `json:"last_run,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. The database decides availability; a
// failing sync only marks the service degraded since stored calls remain
// readable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["database"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	if h.sync != nil {
		comp := syncStatus(h.sync)
		components["sync"] = comp
		if comp.Status == "failing" && overallStatus == "ok" {
			overallStatus = "degraded"
		}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func syncStatus(t syncTracker) CompStatus {
	at, err := t.LastSync()
	if at.IsZero() {
		return CompStatus{Status: "pending"}
	}
	if err != nil {
		return CompStatus{Status: "failing", LastRun: &at, Error: err.Error()}
	}
	return CompStatus{Status: "ok", LastRun: &at}
}
