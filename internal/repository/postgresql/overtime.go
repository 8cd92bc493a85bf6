package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/overtime"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeSelect = `
	SELECT
		o.id, o.employee_id, o.company_id, o.request_date, o.start_time, o.end_time,
		o.total_hours, o.day_type, o.rate_multiplier, o.amount, o.reason,
		o.status, o.needs_review,
		o.verified_by, o.verified_at, o.hr_approved_by, o.hr_approved_at,
		o.reviewed_by, o.reviewed_at, o.rejection_reason,
		o.created_at, o.updated_at,
		e.full_name AS employee_name,
		e.employee_code AS employee_code,
		c.name AS company_name
	FROM overtime_requests o
	JOIN employees e ON o.employee_id = e.id
	JOIN companies c ON o.company_id = c.id
`

func scanOvertime(row pgx.Row) (overtime.Request, error) {
	var o overtime.Request
	err := row.Scan(
		&o.ID, &o.EmployeeID, &o.CompanyID, &o.RequestDate, &o.StartTime, &o.EndTime,
		&o.TotalHours, &o.DayType, &o.RateMultiplier, &o.Amount, &o.Reason,
		&o.Status, &o.NeedsReview,
		&o.VerifiedBy, &o.VerifiedAt, &o.HRApprovedBy, &o.HRApprovedAt,
		&o.ReviewedBy, &o.ReviewedAt, &o.RejectionReason,
		&o.CreatedAt, &o.UpdatedAt,
		&o.EmployeeName, &o.EmployeeCode, &o.CompanyName,
	)
	return o, err
}

func (r *overtimeRepositoryImpl) Create(ctx context.Context, o overtime.Request) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO overtime_requests (
			id, employee_id, company_id, request_date, start_time, end_time,
			total_hours, day_type, rate_multiplier, amount, reason,
			status, needs_review, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id
	`, o.ID, o.EmployeeID, o.CompanyID, o.RequestDate, o.StartTime, o.EndTime,
		o.TotalHours, o.DayType, o.RateMultiplier, o.Amount, o.Reason,
		o.Status, o.NeedsReview,
	).Scan(&id)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOvertime(q.QueryRow(ctx, overtimeSelect+` WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return overtime.Request{}, overtime.ErrRequestNotFound
	}
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to get overtime request: %w", err)
	}
	return o, nil
}

func (r *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	var args []interface{}

	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conditions = append(conditions, fmt.Sprintf("o.company_id = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("o.employee_id = $%d", len(args)))
	}
	if filter.SupervisorID != nil {
		args = append(args, *filter.SupervisorID)
		conditions = append(conditions, fmt.Sprintf("e.supervisor_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.Month != nil && filter.Year != nil {
		args = append(args, *filter.Month, *filter.Year)
		conditions = append(conditions, fmt.Sprintf(
			"EXTRACT(MONTH FROM o.request_date) = $%d AND EXTRACT(YEAR FROM o.request_date) = $%d",
			len(args)-1, len(args),
		))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM overtime_requests o
		JOIN employees e ON o.employee_id = e.id
	` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime requests: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := overtimeSelect + where + fmt.Sprintf(
		" ORDER BY o.request_date DESC, o.created_at DESC LIMIT $%d OFFSET $%d",
		len(args)-1, len(args),
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, o)
	}
	return requests, total, rows.Err()
}

// transition performs a status update guarded on the expected current
// status. Zero affected rows means the request is missing or in another
// state; the caller gets ErrInvalidStatusTransition unless the request does
// not exist at all.
func (r *overtimeRepositoryImpl) transition(ctx context.Context, id, set string, fromStatuses []string, args ...interface{}) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	fullArgs := append([]interface{}{id, fromStatuses}, args...)
	query := fmt.Sprintf(`
		UPDATE overtime_requests
		SET %s, updated_at = NOW()
		WHERE id = $1 AND status = ANY($2)
	`, set)

	tag, err := q.Exec(ctx, query, fullArgs...)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to update overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return overtime.Request{}, getErr
		}
		return overtime.Request{}, overtime.ErrInvalidStatusTransition
	}

	return r.GetByID(ctx, id)
}

func (r *overtimeRepositoryImpl) MarkVerified(ctx context.Context, id, verifierID string) (overtime.Request, error) {
	return r.transition(ctx, id,
		"status = '"+overtime.StatusVerified+"', verified_by = $3, verified_at = NOW()",
		[]string{overtime.StatusPendingVerification},
		verifierID,
	)
}

func (r *overtimeRepositoryImpl) MarkApproved(ctx context.Context, id, approverID string) (overtime.Request, error) {
	return r.transition(ctx, id,
		"status = '"+overtime.StatusApproved+"', hr_approved_by = $3, hr_approved_at = NOW()",
		[]string{overtime.StatusVerified},
		approverID,
	)
}

func (r *overtimeRepositoryImpl) MarkRejected(ctx context.Context, id, approverID, reason string) (overtime.Request, error) {
	return r.transition(ctx, id,
		"status = '"+overtime.StatusRejected+"', hr_approved_by = $3, hr_approved_at = NOW(), rejection_reason = $4",
		[]string{overtime.StatusPendingVerification, overtime.StatusVerified},
		approverID, reason,
	)
}

func (r *overtimeRepositoryImpl) MarkReviewed(ctx context.Context, id, reviewerID string) (overtime.Request, error) {
	return r.transition(ctx, id,
		"status = '"+overtime.StatusReviewed+"', reviewed_by = $3, reviewed_at = NOW(), needs_review = FALSE",
		[]string{overtime.StatusApproved},
		reviewerID,
	)
}

func (r *overtimeRepositoryImpl) MarkCancelled(ctx context.Context, id, employeeID string) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE overtime_requests
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND employee_id = $2 AND status = $4
	`, id, employeeID, overtime.StatusCancelled, overtime.StatusPendingVerification)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to cancel overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		existing, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return overtime.Request{}, getErr
		}
		if existing.EmployeeID != employeeID {
			return overtime.Request{}, overtime.ErrNotRequestOwner
		}
		return overtime.Request{}, overtime.ErrInvalidStatusTransition
	}

	return r.GetByID(ctx, id)
}

// ClassifyDayType classifies a date in SQL against the holiday calendar:
// an active holiday row for the company's state (or a nationwide one)
// overrides the weekday/saturday/sunday split.
func (r *overtimeRepositoryImpl) ClassifyDayType(ctx context.Context, companyID string, date time.Time) (overtime.DayType, error) {
	q := GetQuerier(ctx, r.db)

	var dayType string
	err := q.QueryRow(ctx, `
		SELECT CASE
			WHEN EXISTS (
				SELECT 1
				FROM holidays h
				JOIN companies c ON c.id = $1
				WHERE h.date = $2
					AND h.is_active = TRUE
					AND (h.company_id IS NULL OR h.company_id = $1)
					AND (h.state = '' OR h.state = c.state)
			) THEN 'public_holiday'
			WHEN EXTRACT(DOW FROM $2::date) = 6 THEN 'saturday'
			WHEN EXTRACT(DOW FROM $2::date) = 0 THEN 'sunday'
			ELSE 'weekday'
		END
	`, companyID, date).Scan(&dayType)
	if err != nil {
		return "", fmt.Errorf("failed to classify day type: %w", err)
	}
	return overtime.DayType(dayType), nil
}

func (r *overtimeRepositoryImpl) ApprovedMonthlyHours(ctx context.Context, employeeID string, date time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var hours float64
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_hours), 0)
		FROM overtime_requests
		WHERE employee_id = $1
			AND status = ANY($3)
			AND date_trunc('month', request_date) = date_trunc('month', $2::date)
	`, employeeID, date, []string{overtime.StatusApproved, overtime.StatusReviewed}).Scan(&hours)
	if err != nil {
		return 0, fmt.Errorf("failed to sum monthly hours: %w", err)
	}
	return hours, nil
}

func (r *overtimeRepositoryImpl) Overlaps(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM overtime_requests
			WHERE employee_id = $1
				AND request_date = $2
				AND start_time = $3
				AND end_time = $4
				AND NOT (status = ANY($5))
		)
	`, employeeID, date, startTime, endTime, []string{overtime.StatusRejected, overtime.StatusCancelled}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	return exists, nil
}
