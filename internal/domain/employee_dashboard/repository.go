package employee_dashboard

import (
	"context"
	"time"
)

// ProjectStatusActive is the only project status that feeds the employee
// performance aggregation.
const ProjectStatusActive = "Active"

// LeaveRequestRow is one of the caller's recent leave requests.
type LeaveRequestRow struct {
	ID            string
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	DaysRequested float64
}

// AttendanceRow is one of the caller's recent attendance logs.
type AttendanceRow struct {
	ID       string
	Date     time.Time
	ClockIn  *time.Time
	ClockOut *time.Time
	Status   *string
}

// ProjectRow is the project half of an assignment.
type ProjectRow struct {
	ID        string
	Name      string
	Status    string
	QuarterID string
	EndDate   time.Time
}

// SlaScoreRow is one SLA line item of an assignment.
type SlaScoreRow struct {
	ScoreAchieved    float64
	WeightPercentage float64
}

// QualityScoreRow is one work quality checklist item of an assignment.
type QualityScoreRow struct {
	IsAchieved bool
}

// ProjectAssignmentRow joins an assignment with its project and score
// child rows.
type ProjectAssignmentRow struct {
	AssignmentID  string
	Project       ProjectRow
	SlaScores     []SlaScoreRow
	QualityScores []QualityScoreRow
}

// ReviewCycleRow is a review cycle whose deadline has not passed.
type ReviewCycleRow struct {
	ID      string
	Name    string
	EndDate time.Time
}

// CompetencySet holds the five raw competency scores of one reviewer.
// Raw scores are on a 1..5 scale.
type CompetencySet struct {
	Leadership    float64
	Quality       float64
	Reliability   float64
	Communication float64
	Initiative    float64
}

// CompletedReviewRow is the latest completed self review with its peer
// reviews.
type CompletedReviewRow struct {
	Self  CompetencySet
	Peers []CompetencySet
}

// EmployeeDashboardRepository is the fixed read-query set of the employee
// pipeline. The first six methods form the parallel fan-out; the last two
// run after the join barrier.
type EmployeeDashboardRepository interface {
	// GetLeaveBalance returns the caller's remaining leave days, or nil when
	// no balance row exists.
	GetLeaveBalance(ctx context.Context, userID string) (*float64, error)

	// ListRecentLeaveRequests returns the caller's leave requests newest
	// first, capped at limit.
	ListRecentLeaveRequests(ctx context.Context, userID string, limit int) ([]LeaveRequestRow, error)

	// ListRecentAttendance returns the caller's attendance logs newest first,
	// capped at limit.
	ListRecentAttendance(ctx context.Context, userID string, limit int) ([]AttendanceRow, error)

	// GetReviewSummary returns the caller's overall percentage for the
	// period, or nil when no summary row exists.
	GetReviewSummary(ctx context.Context, userID, cycleID string) (*float64, error)

	// ListActiveProjectAssignments returns the caller's assignments to active
	// projects with SLA and quality child rows, capped at limit.
	ListActiveProjectAssignments(ctx context.Context, userID string, limit int) ([]ProjectAssignmentRow, error)

	// ListUpcomingReviewCycles returns cycles with end_date >= after,
	// earliest first, capped at limit.
	ListUpcomingReviewCycles(ctx context.Context, after time.Time, limit int) ([]ReviewCycleRow, error)

	// GetLatestCompletedReview returns the caller's most recent review with a
	// non-null self score together with its peer reviews, or nil when none
	// exists.
	GetLatestCompletedReview(ctx context.Context, userID string) (*CompletedReviewRow, error)

	// ListSubmittedCycleIDs returns the subset of cycleIDs the caller has a
	// completed review in.
	ListSubmittedCycleIDs(ctx context.Context, userID string, cycleIDs []string) ([]string, error)
}
