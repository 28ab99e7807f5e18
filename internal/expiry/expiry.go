// Package expiry classifies document expiry dates relative to a reference
// day. Drivers, vehicles and fleet companies all use the same rules.
package expiry

import (
	"math"
	"time"
)

type Class string

const (
	ClassUnknown  Class = "unknown"
	ClassExpired  Class = "expired"
	ClassToday    Class = "today"
	ClassExpiring Class = "expiring"
	ClassValid    Class = "valid"
)

// ExpiringWindowDays is fixed business policy, not configurable per
// document type.
const ExpiringWindowDays = 30

type Evaluation struct {
	Class Class `json:"class"`
	// Days is the magnitude: days overdue for expired, days left for
	// expiring. Zero otherwise.
	Days int `json:"days"`
}

// Evaluate truncates both dates to midnight in today's location and
// classifies by whole-day difference. A nil expiry date is unknown,
// never valid.
func Evaluate(expiresAt *time.Time, today time.Time) Evaluation {
	if expiresAt == nil {
		return Evaluation{Class: ClassUnknown}
	}

	days := daysBetween(today, *expiresAt)
	switch {
	case days < 0:
		return Evaluation{Class: ClassExpired, Days: -days}
	case days == 0:
		return Evaluation{Class: ClassToday}
	case days <= ExpiringWindowDays:
		return Evaluation{Class: ClassExpiring, Days: days}
	default:
		return Evaluation{Class: ClassValid}
	}
}

func daysBetween(from, to time.Time) int {
	loc := from.Location()
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)
	// Rounding absorbs DST-shortened or -lengthened days.
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// Summary is the per-entity roll-up of its documents' expiry classes.
// HasExpiring covers both the today and expiring classes; unknown documents
// contribute to nothing.
type Summary struct {
	HasExpired    bool `json:"has_expired"`
	HasExpiring   bool `json:"has_expiring"`
	ExpiredCount  int  `json:"expired_count"`
	ExpiringCount int  `json:"expiring_count"`
	ValidCount    int  `json:"valid_count"`
}

func Summarize(expiries []*time.Time, today time.Time) Summary {
	var s Summary
	for _, e := range expiries {
		switch Evaluate(e, today).Class {
		case ClassExpired:
			s.HasExpired = true
			s.ExpiredCount++
		case ClassToday, ClassExpiring:
			s.HasExpiring = true
			s.ExpiringCount++
		case ClassValid:
			s.ValidCount++
		}
	}
	return s
}

type Bucket string

const (
	BucketNone     Bucket = "none"
	BucketExpired  Bucket = "expired"
	BucketExpiring Bucket = "expiring"
	BucketValid    Bucket = "valid"
)

// Bucket picks the single dashboard bucket for an entity. Expired wins over
// expiring so roll-up counters never double-count; an entity whose documents
// are all unknown (or that has none) lands in no bucket.
func (s Summary) Bucket() Bucket {
	switch {
	case s.HasExpired:
		return BucketExpired
	case s.HasExpiring:
		return BucketExpiring
	case s.ValidCount > 0:
		return BucketValid
	default:
		return BucketNone
	}
}
