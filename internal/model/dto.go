package model

import (
	"fleet-service/internal/expiry"
)

// DriverRecord is the list-view row: the driver plus the expiry roll-up of
// its documents.
type DriverRecord struct {
	Driver    Driver         `json:"driver"`
	Documents expiry.Summary `json:"document_summary"`
}

type VehicleRecord struct {
	Vehicle   Vehicle        `json:"vehicle"`
	Documents expiry.Summary `json:"document_summary"`
}

type FleetCompanyRecord struct {
	FleetCompany FleetCompany   `json:"fleet_company"`
	Documents    expiry.Summary `json:"document_summary"`
	DriverCount  int            `json:"driver_count"`
	VehicleCount int            `json:"vehicle_count"`
}

type DriverLeaveRecord struct {
	DriverLeave
	Phase LeavePhase `json:"phase"`
}

type DriverDetails struct {
	Record DriverRecord        `json:"record"`
	Leaves []DriverLeaveRecord `json:"leaves"`
	Trips  []Trip              `json:"trips"`
}

type VehicleDetails struct {
	Record VehicleRecord `json:"record"`
	Trips  []Trip        `json:"trips"`
}

type FleetCompanyDetails struct {
	Record   FleetCompanyRecord `json:"record"`
	Drivers  []DriverRecord     `json:"drivers"`
	Vehicles []VehicleRecord    `json:"vehicles"`
}

// DashboardCounts are the mutually exclusive document buckets: an entity
// with both expired and expiring documents counts only as expired.
type DashboardCounts struct {
	Expired  int `json:"expired"`
	Expiring int `json:"expiring"`
	Valid    int `json:"valid"`
}
