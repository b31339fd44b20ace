package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	empDashboard "github.com/pulsehr/pulsehr-backend-go/internal/domain/employee_dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/database"
)

type employeeDashboardRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeDashboardRepository(db *database.DB) empDashboard.EmployeeDashboardRepository {
	return &employeeDashboardRepositoryImpl{db: db}
}

// GetLeaveBalance returns remaining leave days, nil when no balance row exists
func (r *employeeDashboardRepositoryImpl) GetLeaveBalance(ctx context.Context, userID string) (*float64, error) {
	var remaining float64
	err := r.db.QueryRow(ctx, `SELECT remaining FROM leave_balances WHERE user_id = $1`, userID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return &remaining, nil
}

// ListRecentLeaveRequests returns the caller's leave requests newest first
func (r *employeeDashboardRepositoryImpl) ListRecentLeaveRequests(ctx context.Context, userID string, limit int) ([]empDashboard.LeaveRequestRow, error) {
	query := `
		SELECT id, leave_type, start_date, end_date, status, days_requested
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leave requests: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.LeaveRequestRow
	for rows.Next() {
		var row empDashboard.LeaveRequestRow
		if err := rows.Scan(
			&row.ID, &row.LeaveType, &row.StartDate, &row.EndDate, &row.Status, &row.DaysRequested,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ListRecentAttendance returns the caller's attendance logs newest first
func (r *employeeDashboardRepositoryImpl) ListRecentAttendance(ctx context.Context, userID string, limit int) ([]empDashboard.AttendanceRow, error) {
	query := `
		SELECT id, date, clock_in, clock_out, status
		FROM attendance_logs
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendance: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.AttendanceRow
	for rows.Next() {
		var row empDashboard.AttendanceRow
		if err := rows.Scan(&row.ID, &row.Date, &row.ClockIn, &row.ClockOut, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetReviewSummary returns the caller's overall percentage for the period,
// nil when no summary row exists
func (r *employeeDashboardRepositoryImpl) GetReviewSummary(ctx context.Context, userID, cycleID string) (*float64, error) {
	var percentage float64
	err := r.db.QueryRow(ctx, `
		SELECT overall_percentage FROM review_summary
		WHERE employee_id = $1 AND cycle_id = $2
	`, userID, cycleID).Scan(&percentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review summary: %w", err)
	}
	return &percentage, nil
}

// ListActiveProjectAssignments returns assignments to active projects with
// SLA and quality child rows. Three reads: assignments, then both child
// tables keyed by assignment id.
func (r *employeeDashboardRepositoryImpl) ListActiveProjectAssignments(ctx context.Context, userID string, limit int) ([]empDashboard.ProjectAssignmentRow, error) {
	query := `
		SELECT pa.id, pj.id, pj.name, pj.status, pj.quarter_id, pj.end_date
		FROM project_assignments pa
		JOIN projects pj ON pa.project_id = pj.id
		WHERE pa.user_id = $1 AND pj.status = $2
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, userID, empDashboard.ProjectStatusActive, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list project assignments: %w", err)
	}

	var assignments []empDashboard.ProjectAssignmentRow
	assignmentIDs := make([]string, 0)
	index := make(map[string]int)
	for rows.Next() {
		var row empDashboard.ProjectAssignmentRow
		if err := rows.Scan(
			&row.AssignmentID,
			&row.Project.ID, &row.Project.Name, &row.Project.Status, &row.Project.QuarterID, &row.Project.EndDate,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan project assignment: %w", err)
		}
		index[row.AssignmentID] = len(assignments)
		assignments = append(assignments, row)
		assignmentIDs = append(assignmentIDs, row.AssignmentID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(assignments) == 0 {
		return assignments, nil
	}

	slaRows, err := r.db.Query(ctx, `
		SELECT assignment_id, score_achieved, weight_percentage
		FROM project_sla_scores
		WHERE assignment_id = ANY($1)
	`, assignmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list sla scores: %w", err)
	}
	for slaRows.Next() {
		var assignmentID string
		var score empDashboard.SlaScoreRow
		if err := slaRows.Scan(&assignmentID, &score.ScoreAchieved, &score.WeightPercentage); err != nil {
			slaRows.Close()
			return nil, fmt.Errorf("failed to scan sla score: %w", err)
		}
		if i, ok := index[assignmentID]; ok {
			assignments[i].SlaScores = append(assignments[i].SlaScores, score)
		}
	}
	slaRows.Close()
	if err := slaRows.Err(); err != nil {
		return nil, err
	}

	qualityRows, err := r.db.Query(ctx, `
		SELECT assignment_id, is_achieved
		FROM project_work_quality_scores
		WHERE assignment_id = ANY($1)
	`, assignmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list work quality scores: %w", err)
	}
	for qualityRows.Next() {
		var assignmentID string
		var score empDashboard.QualityScoreRow
		if err := qualityRows.Scan(&assignmentID, &score.IsAchieved); err != nil {
			qualityRows.Close()
			return nil, fmt.Errorf("failed to scan work quality score: %w", err)
		}
		if i, ok := index[assignmentID]; ok {
			assignments[i].QualityScores = append(assignments[i].QualityScores, score)
		}
	}
	qualityRows.Close()
	if err := qualityRows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// ListUpcomingReviewCycles returns cycles ending on or after the given time,
// earliest first
func (r *employeeDashboardRepositoryImpl) ListUpcomingReviewCycles(ctx context.Context, after time.Time, limit int) ([]empDashboard.ReviewCycleRow, error) {
	query := `
		SELECT id, name, end_date
		FROM review_cycles
		WHERE end_date >= $1
		ORDER BY end_date ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list review cycles: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.ReviewCycleRow
	for rows.Next() {
		var row empDashboard.ReviewCycleRow
		if err := rows.Scan(&row.ID, &row.Name, &row.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan review cycle: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetLatestCompletedReview returns the most recent completed review with its
// peer reviews, nil when none exists. A review without peer reviews does not
// qualify; competency scores are always a self+peer blend.
func (r *employeeDashboardRepositoryImpl) GetLatestCompletedReview(ctx context.Context, userID string) (*empDashboard.CompletedReviewRow, error) {
	var reviewID string
	var review empDashboard.CompletedReviewRow
	err := r.db.QueryRow(ctx, `
		SELECT pr.id, pr.score_leadership, pr.score_quality, pr.score_reliability, pr.score_communication, pr.score_initiative
		FROM performance_reviews pr
		WHERE pr.employee_id = $1 AND pr.self_score IS NOT NULL
		AND EXISTS (SELECT 1 FROM peer_reviews p WHERE p.review_id = pr.id)
		ORDER BY pr.created_at DESC
		LIMIT 1
	`, userID).Scan(
		&reviewID,
		&review.Self.Leadership, &review.Self.Quality, &review.Self.Reliability,
		&review.Self.Communication, &review.Self.Initiative,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest completed review: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT score_leadership, score_quality, score_reliability, score_communication, score_initiative
		FROM peer_reviews
		WHERE review_id = $1
	`, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to list peer reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var peer empDashboard.CompetencySet
		if err := rows.Scan(
			&peer.Leadership, &peer.Quality, &peer.Reliability, &peer.Communication, &peer.Initiative,
		); err != nil {
			return nil, fmt.Errorf("failed to scan peer review: %w", err)
		}
		review.Peers = append(review.Peers, peer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &review, nil
}

// ListSubmittedCycleIDs returns the subset of cycleIDs the caller has a
// completed review in
func (r *employeeDashboardRepositoryImpl) ListSubmittedCycleIDs(ctx context.Context, userID string, cycleIDs []string) ([]string, error) {
	if len(cycleIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT cycle_id
		FROM performance_reviews
		WHERE employee_id = $1 AND self_score IS NOT NULL AND cycle_id = ANY($2)
	`, userID, cycleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted cycles: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var cycleID string
		if err := rows.Scan(&cycleID); err != nil {
			return nil, fmt.Errorf("failed to scan submitted cycle: %w", err)
		}
		result = append(result, cycleID)
	}
	return result, rows.Err()
}
