package employee_dashboard

// ========== COMBINED EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the combined response for the employee
// dashboard endpoint
type EmployeeDashboardResponse struct {
	User                UserResponse         `json:"user"`
	LeaveBalance        float64              `json:"leave_balance"`
	RecentLeaveRequests []LeaveRequestItem   `json:"recent_leave_requests"`
	RecentAttendance    []AttendanceItem     `json:"recent_attendance"`
	AttendanceRate      float64              `json:"attendance_rate"`
	PerformanceOverview PerformanceOverview  `json:"performance_overview"`
	ActiveProjects      []ActiveProjectItem  `json:"active_projects"`
	UpcomingReviews     []UpcomingReviewItem `json:"upcoming_reviews"`
	CompetencyScores    *CompetencyScores    `json:"competency_scores"` // nil until a completed self review exists
}

// UserResponse carries the caller's own profile display fields.
type UserResponse struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	JobTitle  *string `json:"job_title"`
	AvatarURL *string `json:"avatar_url"`
}

// ========== RECENT WINDOWS ==========

type LeaveRequestItem struct {
	ID            string  `json:"id"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"` // "2006-01-02"
	EndDate       string  `json:"end_date"`   // "2006-01-02"
	Status        string  `json:"status"`
	DaysRequested float64 `json:"days_requested"`
}

type AttendanceItem struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // "2006-01-02"
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
	Status   *string `json:"status"`
}

// ========== PERFORMANCE OVERVIEW (Top Cards) ==========

// PerformanceOverview starts with SlaScore and WorkQualityScore nil; both
// are back-filled from the project aggregation only when the employee has
// at least one active project.
type PerformanceOverview struct {
	SlaScore         *float64 `json:"sla_score"`
	ReviewScore      *float64 `json:"review_score"`
	WorkQualityScore *float64 `json:"work_quality_score"`
	Quarter          string   `json:"quarter"`
}

// ========== ACTIVE PROJECTS ==========

type ActiveProjectItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	QuarterID       string  `json:"quarter_id"`
	EndDate         string  `json:"end_date"` // "2006-01-02"
	SlaPercentage   float64 `json:"sla_percentage"`
	QualityAchieved int     `json:"quality_achieved"`
	QualityTotal    int     `json:"quality_total"`
}

// ========== UPCOMING REVIEWS ==========

type UpcomingReviewItem struct {
	CycleID      string `json:"cycle_id"`
	CycleName    string `json:"cycle_name"`
	EndDate      string `json:"end_date"` // RFC 3339
	HasSubmitted bool   `json:"has_submitted"`
}

// ========== COMPETENCY SCORES (Radar Chart) ==========

// CompetencyScores are per-dimension percentages derived from the latest
// completed self review and its peer reviews.
type CompetencyScores struct {
	Leadership    float64 `json:"leadership"`
	Quality       float64 `json:"quality"`
	Reliability   float64 `json:"reliability"`
	Communication float64 `json:"communication"`
	Initiative    float64 `json:"initiative"`
}
