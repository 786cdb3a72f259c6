package server

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"

	"github.com/jacksonlee411/safety-console/pkg/httpapi"
)

type healthStatus string

const (
	healthStatusHealthy  healthStatus = "healthy"
	healthStatusDegraded healthStatus = "degraded"
	healthStatusDown     healthStatus = "down"
)

const degradedLatency = 100 * time.Millisecond

type healthResponse struct {
	Status    healthStatus               `json:"status"`
	Timestamp string                     `json:"timestamp"`
	Checks    map[string]componentHealth `json:"checks"`
}

type componentHealth struct {
	Status       healthStatus `json:"status"`
	ResponseTime string       `json:"responseTime,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// HealthCheck probes one dependency; nil means reachable.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	checks map[string]HealthCheck
}

func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{checks: checks}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Get).Methods(http.MethodGet)
}

func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := healthResponse{
		Status:    healthStatusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]componentHealth, len(names)),
	}
	for _, name := range names {
		start := time.Now()
		err := c.checks[name](ctx)
		elapsed := time.Since(start)

		h := componentHealth{Status: healthStatusHealthy, ResponseTime: elapsed.String()}
		switch {
		case err != nil:
			h.Status = healthStatusDown
			h.Error = err.Error()
			resp.Status = healthStatusDown
		case elapsed > degradedLatency:
			h.Status = healthStatusDegraded
			if resp.Status == healthStatusHealthy {
				resp.Status = healthStatusDegraded
			}
		}
		resp.Checks[name] = h
	}

	status := http.StatusOK
	if resp.Status == healthStatusDown {
		status = http.StatusServiceUnavailable
	}
	_ = httpapi.WriteJSON(w, status, resp)
}
