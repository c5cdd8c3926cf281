package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/xenodash/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Pinger probes the upstream analytics API. *analytics.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Upstream Pinger
	Log      *zap.Logger
}

// NewHandler constructs a health Handler around the upstream probe.
func NewHandler(upstream Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		Upstream: upstream,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "upstream":"reachable" }
//
// When the analytics API cannot be reached: 503 and
//
//	{ "status":"error", "upstream":"unreachable", "message":"Upstream unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Upstream: "reachable",
	}

	if err := h.Upstream.Ping(ctx); err != nil {
		h.Log.Error("health-check: upstream ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Upstream = "unreachable"
		resp.Message = "Upstream unavailable"
		resp.Error = err.Error()
	}

	_ = json.NewEncoder(w).Encode(resp)
}
