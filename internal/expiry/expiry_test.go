package expiry

import (
	"testing"
	"time"
)

var today = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestEvaluateExpired(t *testing.T) {
	cases := []struct {
		expiry *time.Time
		days   int
	}{
		{date(2026, 3, 9), 1},
		{date(2026, 3, 1), 9},
		{date(2025, 3, 10), 365},
	}
	for _, tc := range cases {
		got := Evaluate(tc.expiry, today)
		if got.Class != ClassExpired {
			t.Errorf("Evaluate(%v): got class %s, want expired", tc.expiry, got.Class)
		}
		if got.Days != tc.days {
			t.Errorf("Evaluate(%v): got %d days, want %d", tc.expiry, got.Days, tc.days)
		}
	}
}

func TestEvaluateToday(t *testing.T) {
	// Same calendar day, even late in the evening.
	e := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	got := Evaluate(&e, today)
	if got.Class != ClassToday {
		t.Errorf("got class %s, want today", got.Class)
	}
	if got.Days != 0 {
		t.Errorf("got %d days, want 0", got.Days)
	}
}

func TestEvaluateExpiring(t *testing.T) {
	for days := 1; days <= ExpiringWindowDays; days++ {
		e := today.AddDate(0, 0, days)
		got := Evaluate(&e, today)
		if got.Class != ClassExpiring {
			t.Fatalf("expiry in %d days: got class %s, want expiring", days, got.Class)
		}
		if got.Days != days {
			t.Fatalf("expiry in %d days: got %d days", days, got.Days)
		}
	}
}

func TestEvaluateValid(t *testing.T) {
	for _, days := range []int{31, 45, 400} {
		e := today.AddDate(0, 0, days)
		got := Evaluate(&e, today)
		if got.Class != ClassValid {
			t.Errorf("expiry in %d days: got class %s, want valid", days, got.Class)
		}
	}
}

func TestEvaluateUnknown(t *testing.T) {
	got := Evaluate(nil, today)
	if got.Class != ClassUnknown {
		t.Errorf("got class %s, want unknown", got.Class)
	}

	s := Summarize([]*time.Time{nil, nil}, today)
	if s.HasExpired || s.HasExpiring {
		t.Errorf("unknown documents must not contribute to the summary: %+v", s)
	}
	if s.Bucket() != BucketNone {
		t.Errorf("entity with only unknown documents must land in no bucket, got %s", s.Bucket())
	}
}

func TestSummarizeExpiredWinsOverExpiring(t *testing.T) {
	s := Summarize([]*time.Time{
		date(2026, 3, 1),  // expired
		date(2026, 3, 20), // expiring
	}, today)

	if !s.HasExpired || s.ExpiredCount != 1 {
		t.Errorf("expected one expired document, got %+v", s)
	}
	if !s.HasExpiring || s.ExpiringCount != 1 {
		t.Errorf("expected one expiring document, got %+v", s)
	}
	if s.Bucket() != BucketExpired {
		t.Errorf("dashboard bucket must be expired only, got %s", s.Bucket())
	}
}

func TestSummaryBuckets(t *testing.T) {
	if b := Summarize([]*time.Time{date(2026, 3, 15)}, today).Bucket(); b != BucketExpiring {
		t.Errorf("got %s, want expiring", b)
	}
	if b := Summarize([]*time.Time{date(2026, 6, 1)}, today).Bucket(); b != BucketValid {
		t.Errorf("got %s, want valid", b)
	}
	if b := Summarize(nil, today).Bucket(); b != BucketNone {
		t.Errorf("entity without documents is never valid, got %s", b)
	}
}
