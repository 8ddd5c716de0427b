package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stacklab/stack-soak/workerpool"
)

// RunInfo is the source of run status the API serves. Implemented by
// *workerpool.WorkerPool.
type RunInfo interface {
	Snapshot() workerpool.Status
}

// HTTPAPI exposes the observability surface of a soak run: status,
// health, and prometheus metrics.
type HTTPAPI struct {
	RunID string
	Run   RunInfo
}

// RegisterRoutes register HTTP API routes
func (h HTTPAPI) RegisterRoutes(router *httprouter.Router) {
	router.GET("/v1/status", h.status)
	router.GET("/healthz", h.health)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
}

func (h HTTPAPI) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	snap := h.Run.Snapshot()
	encoder.Encode(&StatusResponse{
		RunID:     h.RunID,
		Workers:   snap.Workers,
		Completed: snap.Completed,
		Done:      snap.Done,
	})
}

func (h HTTPAPI) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{})
}

// StatusResponse is the payload of GET /v1/status.
type StatusResponse struct {
	RunID     string `json:"runId"`
	Workers   uint   `json:"workers"`
	Completed uint   `json:"completed"`
	Done      bool   `json:"done"`
}

// Response is a generic response object
type Response struct {
	Errors []Error `json:"errors,omitempty"`
}

// Error represents a single API error
type Error struct {
	Message string `json:"message"`
}
