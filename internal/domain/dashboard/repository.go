package dashboard

import (
	"context"
	"time"
)

// Leave request statuses as stored. Transitions happen elsewhere; the
// dashboard only reads them.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Attendance log statuses relevant to classification. A NULL status counts
// as on time.
const (
	AttendanceOnTime = "On Time"
	AttendanceLate   = "Late"
)

// PendingReviewRow is a performance review awaiting a self score, joined
// with the employee's profile and the cycle name.
type PendingReviewRow struct {
	EmployeeID       string
	CycleID          string
	CycleName        string
	EmployeeName     *string
	EmployeeAvatar   *string
	EmployeeJobTitle *string
}

// PendingLeaveRow is a leave request with status 'pending', joined with the
// requester's profile.
type PendingLeaveRow struct {
	ID            string
	UserID        string
	UserName      *string
	UserAvatar    *string
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested float64
	Reason        *string
	CreatedAt     time.Time
}

// AttendanceLogRow is one clock record for the reporting day.
type AttendanceLogRow struct {
	ID      string
	ClockIn *time.Time
	Status  *string
}

// ReviewSummaryRow is one employee's overall percentage for the period,
// joined with profile display fields.
type ReviewSummaryRow struct {
	EmployeeID        string
	OverallPercentage float64
	EmployeeName      *string
	EmployeeAvatar    *string
	EmployeeJobTitle  *string
}

// RecentReviewRow is a recently completed review for the activity feed.
type RecentReviewRow struct {
	EmployeeID string
	UserName   *string
	UserAvatar *string
	CreatedAt  time.Time
}

// RecentLeaveRow is a recently created leave request for the activity feed.
type RecentLeaveRow struct {
	ID         string
	UserID     string
	UserName   *string
	UserAvatar *string
	LeaveType  string
	Status     string
	CreatedAt  time.Time
}

// DashboardRepository is the fixed read-query set of the admin pipeline.
// Every method is an independent read; the service fans them out and joins
// before deriving anything.
type DashboardRepository interface {
	// CountProfiles returns the total headcount.
	CountProfiles(ctx context.Context) (int64, error)

	// ListPendingReviews returns reviews with a NULL self score, joined with
	// profile and cycle, capped at limit.
	ListPendingReviews(ctx context.Context, limit int) ([]PendingReviewRow, error)

	// ListPendingLeaveRequests returns pending leave requests newest first,
	// capped at limit.
	ListPendingLeaveRequests(ctx context.Context, limit int) ([]PendingLeaveRow, error)

	// ListAttendanceLogsByDate returns every attendance log for the given day.
	ListAttendanceLogsByDate(ctx context.Context, day time.Time) ([]AttendanceLogRow, error)

	// ListReviewSummaries returns every review summary for the period.
	ListReviewSummaries(ctx context.Context, cycleID string) ([]ReviewSummaryRow, error)

	// ListRecentCompletedReviews returns completed reviews newest first,
	// capped at limit.
	ListRecentCompletedReviews(ctx context.Context, limit int) ([]RecentReviewRow, error)

	// ListRecentLeaveRequests returns leave requests of any status newest
	// first, capped at limit.
	ListRecentLeaveRequests(ctx context.Context, limit int) ([]RecentLeaveRow, error)

	// CountLeaveOnDate returns the number of approved leave requests whose
	// date range covers the given day. Runs after the main fan-out because it
	// supplies the divisor for the attendance math.
	CountLeaveOnDate(ctx context.Context, day time.Time) (int64, error)
}
