package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/profile"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/period"
)

// Fetch limits of the fixed admin query set.
const (
	pendingReviewsLimit = 20
	pendingLeavesLimit  = 20
	recentReviewsLimit  = 10
	recentLeavesLimit   = 10
	activityFeedLimit   = 15
	topPerformersLimit  = 5
	attentionLimit      = 5
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	profiles       profile.ProfileRepository
	periodOverride string
	now            func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, profiles profile.ProfileRepository, periodOverride string) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		profiles:            profiles,
		periodOverride:      periodOverride,
		now:                 time.Now,
	}
}

// callerID extracts user_id from JWT claims
func (s *DashboardServiceImpl) callerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", dashboard.ErrUnauthorized, err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", dashboard.ErrUnauthorized
	}
	return userID, nil
}

func fetchFailed(err error) error {
	return fmt.Errorf("%w: %w", dashboard.ErrFetchFailed, err)
}

// GetAdminDashboard runs the admin pipeline: access gate, parallel fetch
// with a join barrier, then pure derivation over the fetched collections.
func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (*dashboard.AdminDashboardResponse, error) {
	userID, err := s.callerID(ctx)
	if err != nil {
		return nil, err
	}

	caller, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, dashboard.ErrAccessDenied
		}
		return nil, fetchFailed(err)
	}
	if !caller.Role.CanViewTeamDashboard() {
		return nil, dashboard.ErrAccessDenied
	}

	now := s.now()
	cycleID := period.Resolve(s.periodOverride, now)

	var (
		totalEmployees int64
		pendingReviews []dashboard.PendingReviewRow
		pendingLeaves  []dashboard.PendingLeaveRow
		attendanceLogs []dashboard.AttendanceLogRow
		summaries      []dashboard.ReviewSummaryRow
		recentReviews  []dashboard.RecentReviewRow
		recentLeaves   []dashboard.RecentLeaveRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.CountProfiles(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		pendingReviews, err = s.ListPendingReviews(gCtx, pendingReviewsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		pendingLeaves, err = s.ListPendingLeaveRequests(gCtx, pendingLeavesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		attendanceLogs, err = s.ListAttendanceLogsByDate(gCtx, now)
		return err
	})
	g.Go(func() error {
		var err error
		summaries, err = s.ListReviewSummaries(gCtx, cycleID)
		return err
	})
	g.Go(func() error {
		var err error
		recentReviews, err = s.ListRecentCompletedReviews(gCtx, recentReviewsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		recentLeaves, err = s.ListRecentLeaveRequests(gCtx, recentLeavesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fetchFailed(err)
	}

	// Dependent read: the on-leave count is the remaining term of the
	// attendance math, so it runs after the barrier.
	onLeaveCount, err := s.CountLeaveOnDate(ctx, now)
	if err != nil {
		return nil, fetchFailed(err)
	}

	onTime, late := classifyAttendance(attendanceLogs)
	distribution, avgPerformance := buildDistribution(summaries)

	return &dashboard.AdminDashboardResponse{
		TeamMetrics: dashboard.TeamMetricsResponse{
			TotalEmployees:       totalEmployees,
			PendingReviews:       len(pendingReviews),
			PendingLeaveRequests: len(pendingLeaves),
			TodayAttendanceRate:  attendanceRate(totalEmployees, onTime, late, onLeaveCount),
			AvgTeamPerformance:   avgPerformance,
		},
		PerformanceDistribution: distribution,
		PendingReviewsList:      buildPendingReviews(pendingReviews),
		PendingLeaveApprovals:   buildPendingLeaves(pendingLeaves),
		AttendanceOverview: dashboard.AttendanceOverview{
			TotalToday: onTime + late,
			OnTime:     onTime,
			Late:       late,
			OnLeave:    onLeaveCount,
			Absent:     absentCount(totalEmployees, onTime, late, onLeaveCount),
		},
		RecentActivities:          buildActivityFeed(recentReviews, recentLeaves, activityFeedLimit),
		TopPerformers:             rankTopPerformers(summaries, topPerformersLimit),
		EmployeesNeedingAttention: flagNeedsAttention(summaries, attentionLimit),
	}, nil
}
