// Package health reports process liveness, runtime statistics, and recent
// error rates for the monitoring endpoint and the periodic summary job.
package health

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bizvet/bizvet/pkg/constants"
	"github.com/bizvet/bizvet/pkg/errtrack"
	"github.com/bizvet/bizvet/pkg/mathutil"
)

// Health classifications, ordered from best to worst.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Error-rate thresholds per summary window.
const (
	lowErrorThreshold      = 5
	moderateErrorThreshold = 20
)

// RuntimeMetrics holds a snapshot of process-level statistics.
type RuntimeMetrics struct {
	UptimeSeconds  float64 `json:"uptime_seconds"`
	Goroutines     int     `json:"goroutines"`
	HeapAllocBytes uint64  `json:"heap_alloc_bytes"`
	HeapSysBytes   uint64  `json:"heap_sys_bytes"`
	NumGC          uint32  `json:"num_gc"`
}

// Report is a full health check result.
type Report struct {
	Status        string           `json:"status"`
	Message       string           `json:"message"`
	Version       string           `json:"version"`
	Timestamp     time.Time        `json:"timestamp"`
	UptimeSeconds float64          `json:"uptime_seconds"`
	Errors        errtrack.Summary `json:"errors"`
	Runtime       RuntimeMetrics   `json:"runtime"`
}

// Monitor classifies process health from tracked error rates. Reads are
// side-effect free.
type Monitor struct {
	start   time.Time
	tracker *errtrack.Tracker
	version string
	window  time.Duration
}

// NewMonitor constructs a monitor over the given error tracker. An empty
// version is reported as "dev"; a non-positive window selects the default.
func NewMonitor(tracker *errtrack.Tracker, version string, window time.Duration) *Monitor {
	if tracker == nil {
		tracker = errtrack.NewTracker(0)
	}
	if version == "" {
		version = "dev"
	}
	if window <= 0 {
		window = constants.DefaultErrorWindowHours * time.Hour
	}
	return &Monitor{
		start:   time.Now().UTC(),
		tracker: tracker,
		version: version,
		window:  window,
	}
}

// Check returns the current health report. The classification follows the
// number of errors recorded within the window: none or few is healthy, a
// moderate count is degraded, anything above that is unhealthy.
func (m *Monitor) Check() Report {
	now := time.Now().UTC()
	summary := m.tracker.Summary(m.window)

	status := StatusHealthy
	message := "No recent errors"
	switch {
	case summary.TotalErrors == 0:
	case summary.TotalErrors <= lowErrorThreshold:
		message = fmt.Sprintf("Low error rate: %d errors in %g hour(s)", summary.TotalErrors, summary.WindowHours)
	case summary.TotalErrors <= moderateErrorThreshold:
		status = StatusDegraded
		message = fmt.Sprintf("Moderate error rate: %d errors in %g hour(s)", summary.TotalErrors, summary.WindowHours)
	default:
		status = StatusUnhealthy
		message = fmt.Sprintf("High error rate: %d errors in %g hour(s)", summary.TotalErrors, summary.WindowHours)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Report{
		Status:        status,
		Message:       message,
		Version:       m.version,
		Timestamp:     now,
		UptimeSeconds: mathutil.Round(now.Sub(m.start).Seconds()),
		Errors:        summary,
		Runtime: RuntimeMetrics{
			UptimeSeconds:  mathutil.Round(now.Sub(m.start).Seconds()),
			Goroutines:     runtime.NumGoroutine(),
			HeapAllocBytes: mem.HeapAlloc,
			HeapSysBytes:   mem.HeapSys,
			NumGC:          mem.NumGC,
		},
	}
}

// Healthy reports whether the process should pass a load-balancer check.
func (m *Monitor) Healthy() bool {
	return m.Check().Status != StatusUnhealthy
}
