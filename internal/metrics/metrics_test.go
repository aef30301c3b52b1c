package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"posestudio/internal/types"
)

func TestLoginCounters(t *testing.T) {
	beforeAdmin := testutil.ToFloat64(LoginAttempts(string(types.RoleAdmin)))
	beforeMismatch := testutil.ToFloat64(LoginAttempts(ResultMismatch))

	LoginSucceeded(types.RoleAdmin)
	LoginFailed()
	LoginFailed()

	if got := testutil.ToFloat64(LoginAttempts(string(types.RoleAdmin))) - beforeAdmin; got != 1 {
		t.Fatalf("expected one admin login, got %v", got)
	}
	if got := testutil.ToFloat64(LoginAttempts(ResultMismatch)) - beforeMismatch; got != 2 {
		t.Fatalf("expected two mismatches, got %v", got)
	}
}

func TestActiveSessionsGauge(t *testing.T) {
	TrackSessions(nil)
	if got := testutil.ToFloat64(activeSessions); got != 0 {
		t.Fatalf("expected gauge 0 without a counter, got %v", got)
	}

	TrackSessions(func() int { return 3 })
	t.Cleanup(func() { TrackSessions(nil) })
	if got := testutil.ToFloat64(activeSessions); got != 3 {
		t.Fatalf("expected gauge 3, got %v", got)
	}
}
