package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCanTransition(t *testing.T) {
	statuses := []TestRideStatus{TestRidePending, TestRideConfirmed, TestRideCompleted, TestRideCancelled}

	allowed := map[[2]TestRideStatus]bool{
		{TestRidePending, TestRideConfirmed}:   true,
		{TestRidePending, TestRideCancelled}:   true,
		{TestRideConfirmed, TestRideCompleted}: true,
		{TestRideConfirmed, TestRideCancelled}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]TestRideStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}

	if CanTransition("unknown", TestRideConfirmed) {
		t.Error("unknown status should not transition anywhere")
	}
}

func newPendingRide() *TestRide {
	return &TestRide{
		ID:               uuid.New(),
		ListingID:        uuid.New(),
		UserID:           uuid.New(),
		RefundableAmount: DefaultRefundableAmount,
		Status:           TestRidePending,
	}
}

func TestApplyTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)

	ride := newPendingRide()
	if err := ApplyTransition(ride, TestRideConfirmed, now); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if ride.Status != TestRideConfirmed {
		t.Fatalf("status = %s, want confirmed", ride.Status)
	}
	if ride.ConfirmedAt == nil || !ride.ConfirmedAt.Equal(now) {
		t.Fatal("confirmed_at should be stamped with the transition time")
	}

	later := now.Add(48 * time.Hour)
	if err := ApplyTransition(ride, TestRideCompleted, later); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if ride.CompletedAt == nil || !ride.CompletedAt.Equal(later) {
		t.Fatal("completed_at should be stamped with the transition time")
	}
	if !ride.ConfirmedAt.Equal(now) {
		t.Fatal("confirmed_at must not move on later transitions")
	}
}

func TestApplyTransitionCancelled(t *testing.T) {
	now := time.Now()

	ride := newPendingRide()
	if err := ApplyTransition(ride, TestRideCancelled, now); err != nil {
		t.Fatalf("cancel from pending failed: %v", err)
	}
	if ride.CancelledAt == nil {
		t.Fatal("cancelled_at should be stamped")
	}
	if ride.ConfirmedAt != nil {
		t.Fatal("confirmed_at should stay empty when cancelling a pending ride")
	}
}

func TestApplyTransitionRejectsInvalidMoves(t *testing.T) {
	now := time.Now()

	cases := []struct {
		from TestRideStatus
		to   TestRideStatus
	}{
		{TestRidePending, TestRideCompleted},
		{TestRideCompleted, TestRideConfirmed},
		{TestRideCompleted, TestRideCancelled},
		{TestRideCancelled, TestRidePending},
		{TestRideCancelled, TestRideConfirmed},
		{TestRideConfirmed, TestRidePending},
	}
	for _, tc := range cases {
		ride := newPendingRide()
		ride.Status = tc.from
		err := ApplyTransition(ride, tc.to, now)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s -> %s: err = %v, want ErrInvalidTransition", tc.from, tc.to, err)
		}
		if ride.Status != tc.from {
			t.Errorf("%s -> %s: status mutated to %s on rejected transition", tc.from, tc.to, ride.Status)
		}
	}
}
