package model

import (
	"testing"
	"time"
)

func TestDriverLeavePhase(t *testing.T) {
	today := time.Date(2026, 5, 15, 11, 0, 0, 0, time.Local)
	day := func(d int) time.Time {
		return time.Date(2026, 5, d, 0, 0, 0, 0, time.Local)
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  LeavePhase
	}{
		{"starts tomorrow", day(16), day(20), LeavePhaseUpcoming},
		{"ended yesterday", day(1), day(14), LeavePhasePast},
		{"covers today", day(10), day(20), LeavePhaseActive},
		{"starts today", day(15), day(20), LeavePhaseActive},
		{"ends today", day(10), day(15), LeavePhaseActive},
		{"single day today", day(15), day(15), LeavePhaseActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			leave := DriverLeave{LeaveStart: tc.start, LeaveEnd: tc.end}
			if got := leave.Phase(today); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNormalizeReviewStatus(t *testing.T) {
	if got := NormalizeReviewStatus(""); got != ReviewStatusInReview {
		t.Fatalf("empty status should normalize to in_review, got %q", got)
	}
	if got := NormalizeReviewStatus(ReviewStatusApproved); got != ReviewStatusApproved {
		t.Fatalf("approved should stay approved, got %q", got)
	}
}
