package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker tracks the outcome of the most recent analysis run and
// exposes it as a JSON health endpoint.
type HealthChecker struct {
	mu          sync.RWMutex
	lastRun     time.Time
	lastSymbol  string
	lastFailure string
}

type HealthStatus struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	LastRun    time.Time `json:"last_run"`
	LastSymbol string    `json:"last_symbol"`
	Uptime     string    `json:"uptime"`
	Error      string    `json:"error,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{}
}

// MarkRun records a completed analysis; err may be nil.
func (h *HealthChecker) MarkRun(symbol string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastRun = time.Now()
	h.lastSymbol = symbol
	if err != nil {
		h.lastFailure = err.Error()
	} else {
		h.lastFailure = ""
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if h.lastFailure != "" {
		status = "unhealthy"
		w.WriteHeader(http.StatusInternalServerError)
	}

	health := HealthStatus{
		Status:     status,
		Timestamp:  time.Now(),
		LastRun:    h.lastRun,
		LastSymbol: h.lastSymbol,
		Uptime:     time.Since(startTime).String(),
		Error:      h.lastFailure,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
