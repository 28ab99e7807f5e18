package service

import (
	"strings"
	"time"

	"fleet-service/internal/expiry"
	"fleet-service/internal/model"
)

// DocumentFilter narrows a list to entities whose document roll-up matches.
type DocumentFilter string

const (
	DocumentFilterNone     DocumentFilter = ""
	DocumentFilterExpired  DocumentFilter = "expired"
	DocumentFilterExpiring DocumentFilter = "expiring"
	DocumentFilterValid    DocumentFilter = "valid"
)

// matchesSearch is a case-insensitive substring match: the entity matches if
// any configured field contains the query. An empty query matches everything.
func matchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// matchesStatus compares against the normalized status, so a null/empty
// stored status behaves as in_review.
func matchesStatus(status, filter model.ReviewStatus) bool {
	if filter == "" {
		return true
	}
	return model.NormalizeReviewStatus(status) == filter
}

func matchesDocumentFilter(summary expiry.Summary, filter DocumentFilter) bool {
	switch filter {
	case DocumentFilterNone:
		return true
	case DocumentFilterExpired:
		return summary.HasExpired
	case DocumentFilterExpiring:
		return summary.HasExpiring
	case DocumentFilterValid:
		return summary.Bucket() == expiry.BucketValid
	default:
		return false
	}
}

func countBuckets(summaries []expiry.Summary) model.DashboardCounts {
	var counts model.DashboardCounts
	for _, s := range summaries {
		switch s.Bucket() {
		case expiry.BucketExpired:
			counts.Expired++
		case expiry.BucketExpiring:
			counts.Expiring++
		case expiry.BucketValid:
			counts.Valid++
		}
	}
	return counts
}

func documentExpiries(documents []model.Document) []*time.Time {
	expiries := make([]*time.Time, 0, len(documents))
	for _, d := range documents {
		expiries = append(expiries, d.DocumentExpiryDate)
	}
	return expiries
}
