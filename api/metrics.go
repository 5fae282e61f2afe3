package api

import (
	"sync"
	"time"
)

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsSnapshot is the point-in-time view served by the metrics endpoint
type MetricsSnapshot struct {
	StartedAt     time.Time      `json:"startedAt"`
	Uptime        string         `json:"uptime"`
	TotalRequests int64          `json:"totalRequests"`
	TotalErrors   int64          `json:"totalErrors"`
	Routes        []RouteMetrics `json:"routes"`
}

// MetricsCollector collects and aggregates request metrics in memory.
// Recording is a mutex-guarded map update and never does I/O, so it cannot
// meaningfully slow a request. Counters reset on process restart.
type MetricsCollector struct {
	mu            sync.RWMutex
	routes        map[string]*RouteMetrics
	totalRequests int64
	totalErrors   int64
	startedAt     time.Time
}

// NewMetricsCollector initializes a metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		routes:    make(map[string]*RouteMetrics),
		startedAt: time.Now(),
	}
}

// Record adds one completed request to the aggregates
func (mc *MetricsCollector) Record(method, path string, status int, duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	key := method + " " + path
	rm, ok := mc.routes[key]
	if !ok {
		rm = &RouteMetrics{Method: method, Path: path, MinTime: duration}
		mc.routes[key] = rm
	}

	rm.Count++
	rm.TotalTime += duration
	if duration < rm.MinTime {
		rm.MinTime = duration
	}
	if duration > rm.MaxTime {
		rm.MaxTime = duration
	}
	rm.LastRequest = time.Now()

	mc.totalRequests++
	if status >= 400 {
		rm.ErrorCount++
		mc.totalErrors++
	}
}

// Snapshot returns a copy of the current aggregates with averages computed
func (mc *MetricsCollector) Snapshot() MetricsSnapshot {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	snap := MetricsSnapshot{
		StartedAt:     mc.startedAt,
		Uptime:        time.Since(mc.startedAt).Round(time.Second).String(),
		TotalRequests: mc.totalRequests,
		TotalErrors:   mc.totalErrors,
		Routes:        make([]RouteMetrics, 0, len(mc.routes)),
	}
	for _, rm := range mc.routes {
		out := *rm
		if out.Count > 0 {
			out.AvgTime = out.TotalTime / time.Duration(out.Count)
		}
		snap.Routes = append(snap.Routes, out)
	}
	return snap
}
