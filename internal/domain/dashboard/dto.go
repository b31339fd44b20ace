package dashboard

// ========== COMBINED ADMIN DASHBOARD ==========

// AdminDashboardResponse is the combined response for the admin dashboard endpoint
type AdminDashboardResponse struct {
	TeamMetrics               TeamMetricsResponse     `json:"team_metrics"`
	PerformanceDistribution   PerformanceDistribution `json:"performance_distribution"`
	PendingReviewsList        []PendingReviewItem     `json:"pending_reviews_list"`
	PendingLeaveApprovals     []PendingLeaveItem      `json:"pending_leave_approvals"`
	AttendanceOverview        AttendanceOverview      `json:"attendance_overview"`
	RecentActivities          []ActivityItem          `json:"recent_activities"`
	TopPerformers             []RankedEmployee        `json:"top_performers"`
	EmployeesNeedingAttention []AttentionEmployee     `json:"employees_needing_attention"`
}

// ========== TEAM METRICS (Top Cards) ==========

type TeamMetricsResponse struct {
	TotalEmployees       int64    `json:"total_employees"`
	PendingReviews       int      `json:"pending_reviews"`
	PendingLeaveRequests int      `json:"pending_leave_approvals"`
	TodayAttendanceRate  float64  `json:"today_attendance_rate"`
	AvgTeamPerformance   *float64 `json:"avg_team_performance"` // nil when no summaries exist for the period
}

// ========== PERFORMANCE DISTRIBUTION (Donut Chart) ==========

// PerformanceDistribution buckets every review summary of the period by
// overall percentage. The five buckets partition the summary set.
type PerformanceDistribution struct {
	Outstanding      int `json:"outstanding"`       // >= 95
	AboveExpectation int `json:"above_expectation"` // >= 85
	MeetsExpectation int `json:"meets_expectation"` // >= 75
	BelowExpectation int `json:"below_expectation"` // >= 60
	NeedsImprovement int `json:"needs_improvement"` // < 60
}

// ========== PENDING ACTIONS ==========

type PendingReviewItem struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name"`
	EmployeeAvatar   *string `json:"employee_avatar"`
	EmployeeJobTitle *string `json:"employee_job_title"`
	CycleID          string  `json:"cycle_id"`
	CycleName        string  `json:"cycle_name"`
	ReviewersPending int     `json:"reviewers_pending"`
	TotalReviewers   int     `json:"total_reviewers"`
}

type PendingLeaveItem struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      *string `json:"user_name"`
	UserAvatar    *string `json:"user_avatar"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"` // "2006-01-02"
	EndDate       string  `json:"end_date"`   // "2006-01-02"
	DaysRequested float64 `json:"days_requested"`
	Reason        *string `json:"reason"`
	CreatedAt     string  `json:"created_at"` // RFC 3339
}

// ========== ATTENDANCE OVERVIEW ==========

// AttendanceOverview splits the headcount for the reporting day into
// mutually exclusive states: TotalToday+OnLeave+Absent == TotalEmployees,
// with TotalToday = OnTime + Late.
type AttendanceOverview struct {
	TotalToday int64 `json:"total_today"`
	OnTime     int64 `json:"on_time"`
	Late       int64 `json:"late"`
	OnLeave    int64 `json:"on_leave"`
	Absent     int64 `json:"absent"`
}

// ========== RECENT ACTIVITIES (Feed) ==========

type ActivityType string

const (
	ActivityReview        ActivityType = "review"
	ActivityLeaveRequest  ActivityType = "leave_request"
	ActivityLeaveApproved ActivityType = "leave_approved"
	ActivityLeaveRejected ActivityType = "leave_rejected"
)

// ActivityItem is one entry of the merged review+leave feed, ordered by
// timestamp descending.
type ActivityItem struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	UserName    *string      `json:"user_name"`
	UserAvatar  *string      `json:"user_avatar"`
	Description string       `json:"description"`
	Timestamp   string       `json:"timestamp"` // RFC 3339
}

// ========== RANKINGS ==========

type RankedEmployee struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name"`
	EmployeeAvatar    *string `json:"employee_avatar"`
	EmployeeJobTitle  *string `json:"employee_job_title"`
	OverallPercentage float64 `json:"overall_percentage"`
}

type AttentionEmployee struct {
	RankedEmployee
	Reason string `json:"reason"`
}
