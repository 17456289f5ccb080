package application

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusApplied, StatusReviewing, StatusAccepted, StatusRejected} {
		if !s.Valid() {
			t.Errorf("Valid(%q) = false", s)
		}
	}
	for _, s := range []Status{"", "applied", "Shortlisted"} {
		if s.Valid() {
			t.Errorf("Valid(%q) = true", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusApplied, StatusReviewing, true},
		{StatusApplied, StatusAccepted, true},
		{StatusApplied, StatusRejected, true},
		{StatusReviewing, StatusAccepted, true},
		{StatusReviewing, StatusRejected, true},
		{StatusReviewing, StatusApplied, false},
		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusReviewing, false},
		{StatusRejected, StatusAccepted, false},
		{StatusRejected, StatusApplied, false},
		{StatusApplied, StatusApplied, true},
		{StatusAccepted, StatusAccepted, true},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
