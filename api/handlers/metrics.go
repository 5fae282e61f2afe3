package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/linkist/founders-club-api/api"
)

// Metrics exposes the in-process request metrics to admins
type Metrics struct {
	Collector *api.MetricsCollector
}

// MetricsHandler returns a snapshot of the route metrics
func (m Metrics) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(m.Collector.Snapshot())
}
