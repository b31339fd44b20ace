package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/profile"
)

// stubDashboardRepo serves canned fetch results so the pipeline can run
// without a database.
type stubDashboardRepo struct {
	total          int64
	pendingReviews []dashboard.PendingReviewRow
	pendingLeaves  []dashboard.PendingLeaveRow
	attendanceLogs []dashboard.AttendanceLogRow
	summaries      []dashboard.ReviewSummaryRow
	recentReviews  []dashboard.RecentReviewRow
	recentLeaves   []dashboard.RecentLeaveRow
	onLeaveCount   int64
	err            error
}

func (s *stubDashboardRepo) CountProfiles(ctx context.Context) (int64, error) {
	return s.total, s.err
}

func (s *stubDashboardRepo) ListPendingReviews(ctx context.Context, limit int) ([]dashboard.PendingReviewRow, error) {
	return s.pendingReviews, s.err
}

func (s *stubDashboardRepo) ListPendingLeaveRequests(ctx context.Context, limit int) ([]dashboard.PendingLeaveRow, error) {
	return s.pendingLeaves, s.err
}

func (s *stubDashboardRepo) ListAttendanceLogsByDate(ctx context.Context, day time.Time) ([]dashboard.AttendanceLogRow, error) {
	return s.attendanceLogs, s.err
}

func (s *stubDashboardRepo) ListReviewSummaries(ctx context.Context, cycleID string) ([]dashboard.ReviewSummaryRow, error) {
	return s.summaries, s.err
}

func (s *stubDashboardRepo) ListRecentCompletedReviews(ctx context.Context, limit int) ([]dashboard.RecentReviewRow, error) {
	return s.recentReviews, s.err
}

func (s *stubDashboardRepo) ListRecentLeaveRequests(ctx context.Context, limit int) ([]dashboard.RecentLeaveRow, error) {
	return s.recentLeaves, s.err
}

func (s *stubDashboardRepo) CountLeaveOnDate(ctx context.Context, day time.Time) (int64, error) {
	return s.onLeaveCount, s.err
}

type stubProfileRepo struct {
	profiles map[string]*profile.Profile
}

func (s *stubProfileRepo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	if p, ok := s.profiles[id]; ok {
		return p, nil
	}
	return nil, profile.ErrProfileNotFound
}

func (s *stubProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	for _, p := range s.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func adminProfiles() *stubProfileRepo {
	return &stubProfileRepo{profiles: map[string]*profile.Profile{
		"admin-1":       {ID: "admin-1", Email: "admin@example.com", Role: profile.RoleAdmin},
		"stakeholder-1": {ID: "stakeholder-1", Email: "s@example.com", Role: profile.RoleStakeholder},
		"employee-1":    {ID: "employee-1", Email: "e@example.com", Role: profile.RoleEmployee},
	}}
}

func authedCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *stubDashboardRepo, profiles *stubProfileRepo) *DashboardServiceImpl {
	svc := NewDashboardService(repo, profiles, "2025-Q1").(*DashboardServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetAdminDashboard_Unauthorized(t *testing.T) {
	svc := newTestService(&stubDashboardRepo{}, adminProfiles())

	_, err := svc.GetAdminDashboard(context.Background())
	assert.ErrorIs(t, err, dashboard.ErrUnauthorized)
}

func TestGetAdminDashboard_AccessDeniedForEmployee(t *testing.T) {
	svc := newTestService(&stubDashboardRepo{}, adminProfiles())

	_, err := svc.GetAdminDashboard(authedCtx(t, "employee-1"))
	assert.ErrorIs(t, err, dashboard.ErrAccessDenied)
}

func TestGetAdminDashboard_AccessDeniedForUnknownCaller(t *testing.T) {
	svc := newTestService(&stubDashboardRepo{}, adminProfiles())

	_, err := svc.GetAdminDashboard(authedCtx(t, "ghost"))
	assert.ErrorIs(t, err, dashboard.ErrAccessDenied)
}

func TestGetAdminDashboard_FetchFailure(t *testing.T) {
	repo := &stubDashboardRepo{err: errors.New("connection refused")}
	svc := newTestService(repo, adminProfiles())

	_, err := svc.GetAdminDashboard(authedCtx(t, "admin-1"))
	assert.ErrorIs(t, err, dashboard.ErrFetchFailed)
}

func TestGetAdminDashboard_Success(t *testing.T) {
	late := "Late"
	repo := &stubDashboardRepo{
		total: 10,
		pendingReviews: []dashboard.PendingReviewRow{
			{EmployeeID: "e1", CycleID: "2025-Q1", CycleName: "Q1 2025"},
			{EmployeeID: "e2", CycleID: "2025-Q1", CycleName: "Q1 2025"},
		},
		pendingLeaves: []dashboard.PendingLeaveRow{
			{
				ID: "l1", UserID: "e3", LeaveType: "annual", DaysRequested: 2,
				StartDate: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 2, 21, 0, 0, 0, 0, time.UTC),
				CreatedAt: time.Date(2025, 2, 13, 8, 0, 0, 0, time.UTC),
			},
		},
		attendanceLogs: []dashboard.AttendanceLogRow{
			{ID: "a1"}, {ID: "a2"}, {ID: "a3", Status: &late},
		},
		summaries: []dashboard.ReviewSummaryRow{
			{EmployeeID: "e1", OverallPercentage: 96},
			{EmployeeID: "e2", OverallPercentage: 72},
			{EmployeeID: "e3", OverallPercentage: 55},
		},
		recentReviews: []dashboard.RecentReviewRow{
			{EmployeeID: "e1", CreatedAt: time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC)},
		},
		recentLeaves: []dashboard.RecentLeaveRow{
			{ID: "l1", Status: dashboard.LeaveStatusPending, LeaveType: "annual", CreatedAt: time.Date(2025, 2, 13, 8, 0, 0, 0, time.UTC)},
		},
		onLeaveCount: 2,
	}
	svc := newTestService(repo, adminProfiles())

	result, err := svc.GetAdminDashboard(authedCtx(t, "admin-1"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.TeamMetrics.TotalEmployees)
	assert.Equal(t, 2, result.TeamMetrics.PendingReviews)
	assert.Equal(t, 1, result.TeamMetrics.PendingLeaveRequests)
	assert.Equal(t, 50.0, result.TeamMetrics.TodayAttendanceRate)
	require.NotNil(t, result.TeamMetrics.AvgTeamPerformance)
	assert.InDelta(t, 74.3, *result.TeamMetrics.AvgTeamPerformance, 1e-9)

	overview := result.AttendanceOverview
	assert.Equal(t, int64(2), overview.OnTime)
	assert.Equal(t, int64(1), overview.Late)
	assert.Equal(t, int64(2), overview.OnLeave)
	assert.Equal(t, int64(5), overview.Absent)
	assert.Equal(t, result.TeamMetrics.TotalEmployees,
		overview.TotalToday+overview.OnLeave+overview.Absent,
		"daily states must sum to headcount")

	assert.Equal(t, 1, result.PerformanceDistribution.Outstanding)
	assert.Equal(t, 1, result.PerformanceDistribution.BelowExpectation)
	assert.Equal(t, 1, result.PerformanceDistribution.NeedsImprovement)

	require.Len(t, result.TopPerformers, 3)
	assert.Equal(t, "e1", result.TopPerformers[0].EmployeeID)

	require.Len(t, result.EmployeesNeedingAttention, 2)
	assert.Equal(t, "e2", result.EmployeesNeedingAttention[0].EmployeeID)
	assert.Equal(t, "Performance below expectation", result.EmployeesNeedingAttention[0].Reason)
	assert.Equal(t, "Performance significantly below target", result.EmployeesNeedingAttention[1].Reason)

	require.Len(t, result.RecentActivities, 2)
	assert.Equal(t, dashboard.ActivityLeaveRequest, result.RecentActivities[0].Type)
	assert.Equal(t, dashboard.ActivityReview, result.RecentActivities[1].Type)

	require.Len(t, result.PendingReviewsList, 2)
	assert.Equal(t, 5, result.PendingReviewsList[0].TotalReviewers)

	require.Len(t, result.PendingLeaveApprovals, 1)
	assert.Equal(t, "2025-02-20", result.PendingLeaveApprovals[0].StartDate)
}

func TestGetAdminDashboard_StakeholderAllowed(t *testing.T) {
	svc := newTestService(&stubDashboardRepo{total: 3}, adminProfiles())

	result, err := svc.GetAdminDashboard(authedCtx(t, "stakeholder-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.TeamMetrics.TotalEmployees)
	assert.Nil(t, result.TeamMetrics.AvgTeamPerformance)
	assert.Equal(t, 0.0, result.TeamMetrics.TodayAttendanceRate)
	assert.NotNil(t, result.RecentActivities)
}
