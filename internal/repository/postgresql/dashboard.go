package postgresql

import (
	"context"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/dashboard"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CompanySummary(ctx context.Context, companyID string) (dashboard.CompanySummary, error) {
	q := GetQuerier(ctx, r.db)

	var summary dashboard.CompanySummary

	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending_verification'),
			COUNT(*) FILTER (WHERE status = 'verified'),
			COUNT(*) FILTER (WHERE status = 'approved' AND needs_review),
			COALESCE(SUM(total_hours) FILTER (WHERE status IN ('approved', 'reviewed')
				AND date_trunc('month', request_date) = date_trunc('month', CURRENT_DATE)), 0),
			COALESCE(SUM(amount) FILTER (WHERE status IN ('approved', 'reviewed')
				AND date_trunc('month', request_date) = date_trunc('month', CURRENT_DATE)), 0)
		FROM overtime_requests
		WHERE company_id = $1
	`, companyID).Scan(
		&summary.PendingVerification,
		&summary.PendingApproval,
		&summary.NeedsReview,
		&summary.MTDHours,
		&summary.MTDCost,
	)
	if err != nil {
		return dashboard.CompanySummary{}, fmt.Errorf("failed to query company summary: %w", err)
	}

	statusRows, err := q.Query(ctx, `
		SELECT status, COUNT(*)
		FROM overtime_requests
		WHERE company_id = $1
			AND date_trunc('month', request_date) = date_trunc('month', CURRENT_DATE)
		GROUP BY status
		ORDER BY status
	`, companyID)
	if err != nil {
		return dashboard.CompanySummary{}, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer statusRows.Close()

	for statusRows.Next() {
		var sc dashboard.StatusCount
		if err := statusRows.Scan(&sc.Status, &sc.Count); err != nil {
			return dashboard.CompanySummary{}, fmt.Errorf("failed to scan status count: %w", err)
		}
		summary.StatusCounts = append(summary.StatusCounts, sc)
	}
	if err := statusRows.Err(); err != nil {
		return dashboard.CompanySummary{}, err
	}

	dayTypeRows, err := q.Query(ctx, `
		SELECT day_type, COALESCE(SUM(total_hours), 0), COALESCE(SUM(amount), 0)
		FROM overtime_requests
		WHERE company_id = $1
			AND status IN ('approved', 'reviewed')
			AND date_trunc('month', request_date) = date_trunc('month', CURRENT_DATE)
		GROUP BY day_type
		ORDER BY day_type
	`, companyID)
	if err != nil {
		return dashboard.CompanySummary{}, fmt.Errorf("failed to query day type breakdown: %w", err)
	}
	defer dayTypeRows.Close()

	for dayTypeRows.Next() {
		var b dashboard.DayTypeBreakdown
		if err := dayTypeRows.Scan(&b.DayType, &b.Hours, &b.Cost); err != nil {
			return dashboard.CompanySummary{}, fmt.Errorf("failed to scan day type breakdown: %w", err)
		}
		summary.DayTypeBreakdown = append(summary.DayTypeBreakdown, b)
	}

	return summary, dayTypeRows.Err()
}

func (r *dashboardRepositoryImpl) EmployeeSummary(ctx context.Context, employeeID string) (dashboard.EmployeeSummary, error) {
	q := GetQuerier(ctx, r.db)

	var summary dashboard.EmployeeSummary
	err := q.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_hours) FILTER (WHERE status IN ('approved', 'reviewed')
				AND date_trunc('month', request_date) = date_trunc('month', CURRENT_DATE)), 0),
			COALESCE(SUM(amount) FILTER (WHERE status IN ('approved', 'reviewed')
				AND date_trunc('month', request_date) = date_trunc('month', CURRENT_DATE)), 0),
			COUNT(*) FILTER (WHERE status IN ('pending_verification', 'verified')),
			COUNT(*) FILTER (WHERE status IN ('approved', 'reviewed')),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM overtime_requests
		WHERE employee_id = $1
	`, employeeID).Scan(
		&summary.MTDHours,
		&summary.MTDAmount,
		&summary.Pending,
		&summary.Approved,
		&summary.Rejected,
	)
	if err != nil {
		return dashboard.EmployeeSummary{}, fmt.Errorf("failed to query employee summary: %w", err)
	}
	return summary, nil
}
