package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	checkTimeout = 5 * time.Second

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Checks maps dependency names to their readiness checks.
type Checks map[string]CheckFunc

// Health is the response of the health endpoints.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func liveHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: StatusHealthy})
}

// readyHandler runs all checks concurrently. Failed checks report their
// error message instead of "healthy".
func readyHandler(checks Checks, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		var (
			mu      sync.Mutex
			wg      sync.WaitGroup
			healthy = true
			results = make(map[string]string, len(checks))
		)
		for name, check := range checks {
			wg.Go(func() {
				err := check(ctx)
				if err != nil {
					log.WarnContext(ctx, "health check failed",
						slog.String("check", name),
						slog.String("error", err.Error()),
					)
				}

				mu.Lock()
				defer mu.Unlock()
				results[name] = StatusHealthy
				if err != nil {
					results[name] = err.Error()
					healthy = false
				}
			})
		}
		wg.Wait()

		resp := Health{Status: StatusHealthy, Checks: results}
		code := http.StatusOK
		if !healthy {
			resp.Status = StatusUnhealthy
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, resp)
	}
}
