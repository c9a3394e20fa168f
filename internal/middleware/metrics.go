package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics stores application metrics
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	RequestsFailed     uint64
	ScansTotal         uint64
	ScansFailed        uint64
	ClassifierDown     uint64
	ExtractionsTotal   uint64
	ExtractionsFailed  uint64
	StartTime          time.Time
}

var globalMetrics = &Metrics{
	StartTime: time.Now(),
}

func IncrementScans()             { atomic.AddUint64(&globalMetrics.ScansTotal, 1) }
func IncrementScansFailed()       { atomic.AddUint64(&globalMetrics.ScansFailed, 1) }
func IncrementClassifierDown()    { atomic.AddUint64(&globalMetrics.ClassifierDown, 1) }
func IncrementExtractions()       { atomic.AddUint64(&globalMetrics.ExtractionsTotal, 1) }
func IncrementExtractionsFailed() { atomic.AddUint64(&globalMetrics.ExtractionsFailed, 1) }

// GetMetrics returns current metrics
func GetMetrics() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]interface{}{
		"requests_total":       atomic.LoadUint64(&globalMetrics.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&globalMetrics.RequestsInProgress),
		"requests_failed":      atomic.LoadUint64(&globalMetrics.RequestsFailed),
		"scans_total":          atomic.LoadUint64(&globalMetrics.ScansTotal),
		"scans_failed":         atomic.LoadUint64(&globalMetrics.ScansFailed),
		"classifier_down":      atomic.LoadUint64(&globalMetrics.ClassifierDown),
		"extractions_total":    atomic.LoadUint64(&globalMetrics.ExtractionsTotal),
		"extractions_failed":   atomic.LoadUint64(&globalMetrics.ExtractionsFailed),
		"uptime_seconds":       time.Since(globalMetrics.StartTime).Seconds(),
		"memory": map[string]interface{}{
			"alloc_bytes": m.Alloc,
			"sys_bytes":   m.Sys,
			"num_gc":      m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}
}

// MetricsMiddleware tracks request metrics
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint64(&globalMetrics.RequestsTotal, 1)
		atomic.AddUint64(&globalMetrics.RequestsInProgress, 1)
		defer atomic.AddUint64(&globalMetrics.RequestsInProgress, ^uint64(0))

		wrapped := wrapWriter(w)
		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode >= 400 {
			atomic.AddUint64(&globalMetrics.RequestsFailed, 1)
		}
	})
}

// MetricsHandler returns metrics as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetMetrics())
}
