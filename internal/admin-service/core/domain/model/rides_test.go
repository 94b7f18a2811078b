package model

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusMatching, StatusAccepted, true},
		{StatusMatching, StatusCanceled, true},
		{StatusMatching, StatusInProgress, false},
		{StatusMatching, StatusCompleted, false},
		{StatusAccepted, StatusInProgress, true},
		{StatusAccepted, StatusCanceled, true},
		{StatusAccepted, StatusCompleted, false},
		{StatusAccepted, StatusMatching, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCanceled, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCompleted, StatusMatching, false},
		{StatusCanceled, StatusMatching, false},
		{"bogus", StatusAccepted, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	for _, status := range []string{StatusCompleted, StatusCanceled} {
		if !IsTerminalStatus(status) {
			t.Errorf("expected %q to be terminal", status)
		}
	}
	for _, status := range []string{StatusMatching, StatusAccepted, StatusInProgress} {
		if IsTerminalStatus(status) {
			t.Errorf("expected %q not to be terminal", status)
		}
	}
}

func TestApplyTransitionRequiresDriverForAccepted(t *testing.T) {
	ride := Ride{Status: StatusMatching}
	if ride.ApplyTransition(StatusAccepted, time.Now()) {
		t.Fatal("accepted without a driver must be rejected")
	}
	if ride.Status != StatusMatching {
		t.Fatalf("status changed on rejected transition: %q", ride.Status)
	}

	driverId := "d1"
	ride.DriverId = &driverId
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !ride.ApplyTransition(StatusAccepted, at) {
		t.Fatal("accepted with a driver must succeed")
	}
	if ride.AcceptedAt == nil || !ride.AcceptedAt.Equal(at) {
		t.Fatalf("accepted_at not stamped: %v", ride.AcceptedAt)
	}
}

func TestApplyTransitionStampsTerminalTimestamps(t *testing.T) {
	driverId := "d1"
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ride := Ride{Status: StatusInProgress, DriverId: &driverId}
	if !ride.ApplyTransition(StatusCompleted, at) {
		t.Fatal("in_progress -> completed must succeed")
	}
	if ride.CompletedAt == nil || !ride.CompletedAt.Equal(at) {
		t.Fatalf("completed_at not stamped: %v", ride.CompletedAt)
	}
	if ride.CanceledAt != nil {
		t.Fatal("canceled_at stamped on completion")
	}

	ride = Ride{Status: StatusMatching}
	if !ride.ApplyTransition(StatusCanceled, at) {
		t.Fatal("matching -> canceled must succeed")
	}
	if ride.CanceledAt == nil || !ride.CanceledAt.Equal(at) {
		t.Fatalf("canceled_at not stamped: %v", ride.CanceledAt)
	}

	// terminal states accept nothing further
	if ride.ApplyTransition(StatusMatching, at) || ride.ApplyTransition(StatusCompleted, at) {
		t.Fatal("transition out of canceled must be rejected")
	}
}
