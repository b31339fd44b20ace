package employee_dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	empDashboard "github.com/pulsehr/pulsehr-backend-go/internal/domain/employee_dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/profile"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/period"
)

// Fetch limits of the fixed employee query set.
const (
	recentLeavesLimit     = 5
	recentAttendanceLimit = 7
	activeProjectsLimit   = 10
	upcomingCyclesLimit   = 3
)

type EmployeeDashboardServiceImpl struct {
	empDashboard.EmployeeDashboardRepository
	profiles       profile.ProfileRepository
	periodOverride string
	now            func() time.Time
}

func NewEmployeeDashboardService(repo empDashboard.EmployeeDashboardRepository, profiles profile.ProfileRepository, periodOverride string) empDashboard.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		EmployeeDashboardRepository: repo,
		profiles:                    profiles,
		periodOverride:              periodOverride,
		now:                         time.Now,
	}
}

// callerID extracts user_id from JWT claims
func (s *EmployeeDashboardServiceImpl) callerID(ctx context.Context) (string, error) {
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

// GetEmployeeDashboard runs the employee pipeline: access gate, parallel
// fetch with a join barrier, two dependent reads, then pure derivation.
func (s *EmployeeDashboardServiceImpl) GetEmployeeDashboard(ctx context.Context) (*empDashboard.EmployeeDashboardResponse, error) {
	userID, err := s.callerID(ctx)
	if err != nil {
		return nil, err
	}

	// Any resolvable profile may view its own dashboard.
	caller, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fetchFailed(err)
	}

	now := s.now()
	cycleID := period.Resolve(s.periodOverride, now)

	var (
		leaveBalance *float64
		recentLeaves []empDashboard.LeaveRequestRow
		recentLogs   []empDashboard.AttendanceRow
		reviewScore  *float64
		assignments  []empDashboard.ProjectAssignmentRow
		upcomingRows []empDashboard.ReviewCycleRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		leaveBalance, err = s.GetLeaveBalance(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		recentLeaves, err = s.ListRecentLeaveRequests(gCtx, userID, recentLeavesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		recentLogs, err = s.ListRecentAttendance(gCtx, userID, recentAttendanceLimit)
		return err
	})
	g.Go(func() error {
		var err error
		reviewScore, err = s.GetReviewSummary(gCtx, userID, cycleID)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.ListActiveProjectAssignments(gCtx, userID, activeProjectsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		upcomingRows, err = s.ListUpcomingReviewCycles(gCtx, now, upcomingCyclesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fetchFailed(err)
	}

	// Dependent reads: only needed by the derivation stage.
	latestReview, err := s.GetLatestCompletedReview(ctx, userID)
	if err != nil {
		return nil, fetchFailed(err)
	}

	cycleIDs := make([]string, 0, len(upcomingRows))
	for _, cycle := range upcomingRows {
		cycleIDs = append(cycleIDs, cycle.ID)
	}
	submittedIDs, err := s.ListSubmittedCycleIDs(ctx, userID, cycleIDs)
	if err != nil {
		return nil, fetchFailed(err)
	}

	activeProjects := buildActiveProjects(assignments)

	resp := &empDashboard.EmployeeDashboardResponse{
		User: empDashboard.UserResponse{
			ID:        caller.ID,
			FullName:  caller.FullName,
			JobTitle:  caller.JobTitle,
			AvatarURL: caller.AvatarURL,
		},
		LeaveBalance:        balanceOrZero(leaveBalance),
		RecentLeaveRequests: buildRecentLeaves(recentLeaves),
		RecentAttendance:    buildRecentAttendance(recentLogs),
		AttendanceRate:      attendanceRate(recentLogs),
		PerformanceOverview: empDashboard.PerformanceOverview{
			ReviewScore: reviewScore,
			Quarter:     cycleID,
		},
		ActiveProjects:   activeProjects,
		UpcomingReviews:  buildUpcomingReviews(upcomingRows, submittedIDs),
		CompetencyScores: competencyScores(latestReview),
	}

	// slaScore and workQualityScore start nil and are back-filled only when
	// at least one active project exists.
	backfillProjectScores(&resp.PerformanceOverview, activeProjects)

	return resp, nil
}
