package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db database.Querier
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountProfiles returns the total headcount
func (r *dashboardRepositoryImpl) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

// ListPendingReviews returns reviews awaiting a self score, joined with
// profile display fields and cycle name
func (r *dashboardRepositoryImpl) ListPendingReviews(ctx context.Context, limit int) ([]dashboard.PendingReviewRow, error) {
	query := `
		SELECT pr.employee_id, pr.cycle_id, rc.name, p.full_name, p.avatar_url, p.job_title
		FROM performance_reviews pr
		JOIN review_cycles rc ON pr.cycle_id = rc.id
		LEFT JOIN profiles p ON pr.employee_id = p.id
		WHERE pr.self_score IS NULL
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	defer rows.Close()

	var result []dashboard.PendingReviewRow
	for rows.Next() {
		var row dashboard.PendingReviewRow
		if err := rows.Scan(
			&row.EmployeeID, &row.CycleID, &row.CycleName,
			&row.EmployeeName, &row.EmployeeAvatar, &row.EmployeeJobTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending review: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListPendingLeaveRequests returns pending leave requests newest first
func (r *dashboardRepositoryImpl) ListPendingLeaveRequests(ctx context.Context, limit int) ([]dashboard.PendingLeaveRow, error) {
	query := `
		SELECT lr.id, lr.user_id, p.full_name, p.avatar_url,
			lr.leave_type, lr.start_date, lr.end_date, lr.days_requested, lr.reason, lr.created_at
		FROM leave_requests lr
		LEFT JOIN profiles p ON lr.user_id = p.id
		WHERE lr.status = $1
		ORDER BY lr.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, dashboard.LeaveStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	defer rows.Close()

	var result []dashboard.PendingLeaveRow
	for rows.Next() {
		var row dashboard.PendingLeaveRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.UserName, &row.UserAvatar,
			&row.LeaveType, &row.StartDate, &row.EndDate, &row.DaysRequested, &row.Reason, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending leave request: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListAttendanceLogsByDate returns every attendance log for the day
func (r *dashboardRepositoryImpl) ListAttendanceLogsByDate(ctx context.Context, day time.Time) ([]dashboard.AttendanceLogRow, error) {
	query := `
		SELECT id, clock_in, status
		FROM attendance_logs
		WHERE date = $1::date
	`

	rows, err := r.db.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var result []dashboard.AttendanceLogRow
	for rows.Next() {
		var row dashboard.AttendanceLogRow
		if err := rows.Scan(&row.ID, &row.ClockIn, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListReviewSummaries returns every summary for the period, joined with
// profile display fields
func (r *dashboardRepositoryImpl) ListReviewSummaries(ctx context.Context, cycleID string) ([]dashboard.ReviewSummaryRow, error) {
	query := `
		SELECT rs.employee_id, rs.overall_percentage, p.full_name, p.avatar_url, p.job_title
		FROM review_summary rs
		LEFT JOIN profiles p ON rs.employee_id = p.id
		WHERE rs.cycle_id = $1
	`

	rows, err := r.db.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list review summaries: %w", err)
	}
	defer rows.Close()

	var result []dashboard.ReviewSummaryRow
	for rows.Next() {
		var row dashboard.ReviewSummaryRow
		if err := rows.Scan(
			&row.EmployeeID, &row.OverallPercentage,
			&row.EmployeeName, &row.EmployeeAvatar, &row.EmployeeJobTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review summary: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListRecentCompletedReviews returns completed reviews newest first
func (r *dashboardRepositoryImpl) ListRecentCompletedReviews(ctx context.Context, limit int) ([]dashboard.RecentReviewRow, error) {
	query := `
		SELECT pr.employee_id, p.full_name, p.avatar_url, pr.created_at
		FROM performance_reviews pr
		LEFT JOIN profiles p ON pr.employee_id = p.id
		WHERE pr.self_score IS NOT NULL
		ORDER BY pr.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reviews: %w", err)
	}
	defer rows.Close()

	var result []dashboard.RecentReviewRow
	for rows.Next() {
		var row dashboard.RecentReviewRow
		if err := rows.Scan(&row.EmployeeID, &row.UserName, &row.UserAvatar, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent review: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListRecentLeaveRequests returns leave requests of any status newest first
func (r *dashboardRepositoryImpl) ListRecentLeaveRequests(ctx context.Context, limit int) ([]dashboard.RecentLeaveRow, error) {
	query := `
		SELECT lr.id, lr.user_id, p.full_name, p.avatar_url, lr.leave_type, lr.status, lr.created_at
		FROM leave_requests lr
		LEFT JOIN profiles p ON lr.user_id = p.id
		ORDER BY lr.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leave requests: %w", err)
	}
	defer rows.Close()

	var result []dashboard.RecentLeaveRow
	for rows.Next() {
		var row dashboard.RecentLeaveRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.UserName, &row.UserAvatar,
			&row.LeaveType, &row.Status, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recent leave request: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountLeaveOnDate returns the number of approved leave requests covering
// the day
func (r *dashboardRepositoryImpl) CountLeaveOnDate(ctx context.Context, day time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE status = $1
		AND start_date <= $2::date
		AND end_date >= $2::date
	`

	var count int64
	err := r.db.QueryRow(ctx, query, dashboard.LeaveStatusApproved, day).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	return count, nil
}
