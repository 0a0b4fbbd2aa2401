// Package breaker builds circuit breakers around calls to optional backends.
package breaker

import (
	"time"

	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sony/gobreaker/v2"
)

// Config holds breaker thresholds.
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the breaker
	Timeout          time.Duration // how long the breaker stays open
	MaxRequests      uint32        // trial requests allowed while half-open
}

// New creates a breaker that opens after FailureThreshold consecutive failures
// and logs every state change.
func New[T any](cfg Config) *gobreaker.CircuitBreaker[T] {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}
