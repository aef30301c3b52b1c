package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"posestudio/internal/types"
)

const ResultMismatch = "mismatch"

var (
	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posestudio",
			Name:      "login_attempts_total",
			Help:      "Login submits by outcome: the granted role or mismatch",
		}, []string{"result"})

	activeSessions = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "posestudio",
			Name:      "active_sessions",
			Help:      "The amount of sessions holding a signed-in user",
		}, countSessions)

	sessionsMu      sync.RWMutex
	sessionsCounter func() int
)

func init() {
	prometheus.MustRegister(loginAttempts)
	prometheus.MustRegister(activeSessions)
	for _, result := range []string{string(types.RoleAdmin), string(types.RoleUser), ResultMismatch} {
		loginAttempts.WithLabelValues(result)
	}
}

func LoginSucceeded(role types.Role) {
	loginAttempts.WithLabelValues(string(role)).Inc()
}

func LoginFailed() {
	loginAttempts.WithLabelValues(ResultMismatch).Inc()
}

// TrackSessions sets the function the active_sessions gauge reads on scrape.
func TrackSessions(fn func() int) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	sessionsCounter = fn
}

func countSessions() float64 {
	sessionsMu.RLock()
	defer sessionsMu.RUnlock()
	if sessionsCounter == nil {
		return 0
	}
	return float64(sessionsCounter())
}

// LoginAttempts returns the counter for one result label.
func LoginAttempts(result string) prometheus.Counter {
	return loginAttempts.WithLabelValues(result)
}
