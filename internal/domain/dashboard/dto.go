package dashboard

// StatusCount is one lifecycle bucket on the management dashboard
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DayTypeBreakdown is the MTD hours/cost split per day type
type DayTypeBreakdown struct {
	DayType string  `json:"day_type"`
	Hours   float64 `json:"hours"`
	Cost    float64 `json:"cost"`
}

// CompanySummary is the HR/management dashboard payload, month-to-date
type CompanySummary struct {
	PendingVerification int64              `json:"pending_verification"`
	PendingApproval     int64              `json:"pending_approval"`
	NeedsReview         int64              `json:"needs_review"`
	MTDHours            float64            `json:"mtd_hours"`
	MTDCost             float64            `json:"mtd_cost"`
	MTDCostText         string             `json:"mtd_cost_text"`
	StatusCounts        []StatusCount      `json:"status_counts"`
	DayTypeBreakdown    []DayTypeBreakdown `json:"day_type_breakdown"`
}

// EmployeeSummary is the employee dashboard payload, month-to-date
type EmployeeSummary struct {
	MTDHours     float64 `json:"mtd_hours"`
	MTDHoursText string  `json:"mtd_hours_text"`
	MTDAmount    float64 `json:"mtd_amount"`
	MTDText      string  `json:"mtd_amount_text"`
	Pending      int64   `json:"pending"`
	Approved     int64   `json:"approved"`
	Rejected     int64   `json:"rejected"`
}
