package app

import (
	"context"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const healthCheckTimeout = 5 * time.Second

// HealthCheck is the result of probing one dependency.
type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthReport is what `lightbnb health` prints.
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

// Healthy reports whether every check passed.
func (r HealthReport) Healthy() bool {
	return r.Status == "healthy"
}

// CheckHealth pings the database and builds a report. Failures are logged
// and, when New Relic is enabled, recorded as HealthCheckError events.
func CheckHealth(ctx context.Context, environment string, ping func(context.Context) error, logger zerolog.Logger, nrApp *newrelic.Application) HealthReport {
	start := time.Now()
	logger = logger.With().Str("operation", "health_check").Logger()

	report := HealthReport{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: environment,
		Checks:      map[string]HealthCheck{},
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	dbStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(dbStart)

	if err != nil {
		report.Status = "unhealthy"
		report.Checks["database"] = HealthCheck{
			Status:       "unhealthy",
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msg("database health check failed")

		if nrApp != nil {
			nrApp.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		return report
	}

	report.Checks["database"] = HealthCheck{
		Status:       "healthy",
		ResponseTime: elapsed.String(),
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return report
}
