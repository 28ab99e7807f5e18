package service

import (
	"testing"
	"time"

	"fleet-service/internal/expiry"
	"fleet-service/internal/model"
)

var filterToday = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func driverFixture(name, city string, status model.ReviewStatus, expiries ...*time.Time) model.Driver {
	documents := make([]model.Document, 0, len(expiries))
	for _, e := range expiries {
		documents = append(documents, model.Document{DocumentExpiryDate: e})
	}
	return model.Driver{
		FullName:  name,
		City:      city,
		Status:    status,
		Documents: documents,
	}
}

func TestFilterDriversConjunction(t *testing.T) {
	drivers := []model.Driver{
		driverFixture("Alice Acme", "Berlin", model.ReviewStatusApproved, date(2027, 1, 1)),
		driverFixture("Bob Acme", "Hamburg", model.ReviewStatusRejected, date(2027, 1, 1)),
		driverFixture("Carol Beta", "Berlin", model.ReviewStatusApproved, date(2027, 1, 1)),
	}

	records := filterDriverRecords(drivers, DriverListOptions{
		Search: "acme",
		Status: model.ReviewStatusApproved,
	}, filterToday)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Driver.FullName != "Alice Acme" {
		t.Fatalf("expected Alice Acme, got %s", records[0].Driver.FullName)
	}
}

func TestFilterDriversSearchCaseInsensitive(t *testing.T) {
	drivers := []model.Driver{
		driverFixture("NorthStar Logistics", "Munich", model.ReviewStatusApproved),
		driverFixture("Southbound", "Munich", model.ReviewStatusApproved),
	}

	for _, query := range []string{"northstar", "NORTHSTAR", "rthSta"} {
		records := filterDriverRecords(drivers, DriverListOptions{Search: query}, filterToday)
		if len(records) != 1 || records[0].Driver.FullName != "NorthStar Logistics" {
			t.Fatalf("query %q: expected only NorthStar Logistics, got %d records", query, len(records))
		}
	}
}

func TestFilterDriversNullStatusBehavesAsInReview(t *testing.T) {
	drivers := []model.Driver{
		driverFixture("Fresh Signup", "Cologne", ""),
		driverFixture("Approved Veteran", "Cologne", model.ReviewStatusApproved),
	}

	records := filterDriverRecords(drivers, DriverListOptions{Status: model.ReviewStatusInReview}, filterToday)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Driver.FullName != "Fresh Signup" {
		t.Fatalf("expected Fresh Signup, got %s", records[0].Driver.FullName)
	}
	if records[0].Driver.Status != model.ReviewStatusInReview {
		t.Fatalf("expected normalized status in_review, got %q", records[0].Driver.Status)
	}
}

func TestFilterDriversByDocumentClass(t *testing.T) {
	expired := date(2026, 3, 1)
	expiring := date(2026, 3, 25)
	valid := date(2027, 6, 1)

	drivers := []model.Driver{
		driverFixture("Has Expired", "Berlin", model.ReviewStatusApproved, expired, valid),
		driverFixture("Has Expiring", "Berlin", model.ReviewStatusApproved, expiring, valid),
		driverFixture("All Valid", "Berlin", model.ReviewStatusApproved, valid),
	}

	records := filterDriverRecords(drivers, DriverListOptions{DocumentFilter: DocumentFilterExpired}, filterToday)
	if len(records) != 1 || records[0].Driver.FullName != "Has Expired" {
		t.Fatalf("expired filter: expected only Has Expired, got %d records", len(records))
	}

	records = filterDriverRecords(drivers, DriverListOptions{DocumentFilter: DocumentFilterExpiring}, filterToday)
	if len(records) != 1 || records[0].Driver.FullName != "Has Expiring" {
		t.Fatalf("expiring filter: expected only Has Expiring, got %d records", len(records))
	}

	records = filterDriverRecords(drivers, DriverListOptions{DocumentFilter: DocumentFilterValid}, filterToday)
	if len(records) != 1 || records[0].Driver.FullName != "All Valid" {
		t.Fatalf("valid filter: expected only All Valid, got %d records", len(records))
	}
}

func TestFilterDriversPreservesOrder(t *testing.T) {
	drivers := []model.Driver{
		driverFixture("Zed", "Berlin", model.ReviewStatusApproved),
		driverFixture("Anna", "Berlin", model.ReviewStatusApproved),
		driverFixture("Mike", "Berlin", model.ReviewStatusApproved),
	}

	records := filterDriverRecords(drivers, DriverListOptions{}, filterToday)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"Zed", "Anna", "Mike"} {
		if records[i].Driver.FullName != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, records[i].Driver.FullName)
		}
	}
}

func TestFilterDriversUnknownOnlyDocumentsNeverValid(t *testing.T) {
	drivers := []model.Driver{
		driverFixture("No Dates", "Berlin", model.ReviewStatusApproved, nil, nil),
	}

	records := filterDriverRecords(drivers, DriverListOptions{DocumentFilter: DocumentFilterValid}, filterToday)
	if len(records) != 0 {
		t.Fatalf("unknown-only documents must not match the valid filter, got %d records", len(records))
	}
}

func companyFixture(name string, status model.ReviewStatus, expiries ...*time.Time) model.FleetCompany {
	documents := make([]model.Document, 0, len(expiries))
	for _, e := range expiries {
		documents = append(documents, model.Document{DocumentExpiryDate: e})
	}
	return model.FleetCompany{
		CompanyName: name,
		Status:      status,
		Documents:   documents,
	}
}

// Fleet companies feed the same expiry roll-up as drivers and vehicles, so
// the dashboard counts them with the same bucket rules.
func TestFleetCompanyDocumentBuckets(t *testing.T) {
	companies := []model.FleetCompany{
		companyFixture("Overdue Cargo", model.ReviewStatusApproved, date(2026, 2, 1)),
		companyFixture("Renewing Soon", model.ReviewStatusApproved, date(2026, 3, 30)),
		companyFixture("Paperwork Done", model.ReviewStatusApproved, date(2027, 1, 1)),
		companyFixture("No Dates", model.ReviewStatusApproved, nil),
	}

	records := filterFleetCompanyRecords(companies, FleetCompanyListOptions{}, filterToday)
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	summaries := make([]expiry.Summary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Documents)
	}

	counts := countBuckets(summaries)
	if counts.Expired != 1 || counts.Expiring != 1 || counts.Valid != 1 {
		t.Fatalf("expected 1/1/1 expired/expiring/valid, got %d/%d/%d",
			counts.Expired, counts.Expiring, counts.Valid)
	}
}

func TestCountBucketsExpiredWins(t *testing.T) {
	expired := date(2026, 3, 1)
	expiring := date(2026, 3, 20)
	valid := date(2027, 1, 1)

	drivers := []model.Driver{
		driverFixture("Both", "Berlin", model.ReviewStatusApproved, expired, expiring),
		driverFixture("Soon", "Berlin", model.ReviewStatusApproved, expiring),
		driverFixture("Fine", "Berlin", model.ReviewStatusApproved, valid),
		driverFixture("Undated", "Berlin", model.ReviewStatusApproved, nil),
	}

	records := filterDriverRecords(drivers, DriverListOptions{}, filterToday)
	summaries := make([]expiry.Summary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Documents)
	}

	counts := countBuckets(summaries)
	if counts.Expired != 1 {
		t.Fatalf("expected 1 expired entity, got %d", counts.Expired)
	}
	if counts.Expiring != 1 {
		t.Fatalf("expected 1 expiring entity, got %d", counts.Expiring)
	}
	if counts.Valid != 1 {
		t.Fatalf("expected 1 valid entity, got %d", counts.Valid)
	}
}
