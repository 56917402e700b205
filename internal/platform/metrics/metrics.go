package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps cheap request counters for the /metrics endpoint.
type Collector struct {
	totalRequests   uint64
	clientErrors    uint64
	serverErrors    uint64
	gateRejections  uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status == 401:
		atomic.AddUint64(&c.gateRejections, 1)
		atomic.AddUint64(&c.clientErrors, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":       total,
		"clientErrorsTotal":   atomic.LoadUint64(&c.clientErrors),
		"serverErrorsTotal":   atomic.LoadUint64(&c.serverErrors),
		"gateRejectionsTotal": atomic.LoadUint64(&c.gateRejections),
		"avgDurationMs":       avg,
	}
}
