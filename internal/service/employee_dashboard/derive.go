package employee_dashboard

import (
	"math"
	"time"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	empDashboard "github.com/pulsehr/pulsehr-backend-go/internal/domain/employee_dashboard"
)

// SLA scoring constants: each line item can score up to weight*120 points,
// and raw competency scores run 1..5.
const (
	slaWeightScale   = 120
	maxCompetencyRaw = 5
)

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func balanceOrZero(balance *float64) float64 {
	if balance == nil {
		return 0
	}
	return *balance
}

// attendanceRate is the on-time share of the fetched window as a percentage,
// one decimal. Late days count against the rate. An empty window yields 100.
func attendanceRate(logs []empDashboard.AttendanceRow) float64 {
	if len(logs) == 0 {
		return 100
	}

	var onTime int
	for _, log := range logs {
		if log.Status == nil || *log.Status == dashboard.AttendanceOnTime {
			onTime++
		}
	}
	return roundTenth(float64(onTime) / float64(len(logs)) * 100)
}

// projectScores computes the SLA percentage and quality counts of one
// assignment. The weighted denominator being zero yields 0, not an error.
func projectScores(assignment empDashboard.ProjectAssignmentRow) (slaPercentage float64, qualityAchieved, qualityTotal int) {
	var achieved, bestPossible float64
	for _, score := range assignment.SlaScores {
		achieved += score.ScoreAchieved
		bestPossible += score.WeightPercentage * slaWeightScale
	}
	if bestPossible > 0 {
		slaPercentage = roundTenth(achieved / bestPossible * 100)
	}

	for _, score := range assignment.QualityScores {
		if score.IsAchieved {
			qualityAchieved++
		}
	}
	return slaPercentage, qualityAchieved, len(assignment.QualityScores)
}

func buildActiveProjects(assignments []empDashboard.ProjectAssignmentRow) []empDashboard.ActiveProjectItem {
	projects := make([]empDashboard.ActiveProjectItem, 0, len(assignments))
	for _, assignment := range assignments {
		slaPercentage, qualityAchieved, qualityTotal := projectScores(assignment)
		projects = append(projects, empDashboard.ActiveProjectItem{
			ID:              assignment.Project.ID,
			Name:            assignment.Project.Name,
			Status:          assignment.Project.Status,
			QuarterID:       assignment.Project.QuarterID,
			EndDate:         assignment.Project.EndDate.Format("2006-01-02"),
			SlaPercentage:   slaPercentage,
			QualityAchieved: qualityAchieved,
			QualityTotal:    qualityTotal,
		})
	}
	return projects
}

// backfillProjectScores patches the aggregate SLA and work quality scores
// onto the overview only when at least one active project exists; otherwise
// both stay nil.
func backfillProjectScores(overview *empDashboard.PerformanceOverview, projects []empDashboard.ActiveProjectItem) {
	if len(projects) == 0 {
		return
	}

	var slaTotal float64
	var qualityAchieved, qualityTotal int
	for _, project := range projects {
		slaTotal += project.SlaPercentage
		qualityAchieved += project.QualityAchieved
		qualityTotal += project.QualityTotal
	}

	slaScore := roundTenth(slaTotal / float64(len(projects)))
	var qualityScore float64
	if qualityTotal > 0 {
		qualityScore = roundTenth(float64(qualityAchieved) / float64(qualityTotal) * 100)
	}

	overview.SlaScore = &slaScore
	overview.WorkQualityScore = &qualityScore
}

// competencyAverage blends the self score with peer scores on one dimension
// and scales the 1..5 raw average to a percentage.
func competencyAverage(selfScore float64, peerScores []float64) float64 {
	total := selfScore
	for _, score := range peerScores {
		total += score
	}
	avg := total / float64(len(peerScores)+1)
	return avg / maxCompetencyRaw * 100
}

// competencyScores derives the five dimension percentages from the latest
// completed review, nil when no completed review exists.
func competencyScores(review *empDashboard.CompletedReviewRow) *empDashboard.CompetencyScores {
	if review == nil {
		return nil
	}

	collect := func(pick func(empDashboard.CompetencySet) float64) []float64 {
		scores := make([]float64, 0, len(review.Peers))
		for _, peer := range review.Peers {
			scores = append(scores, pick(peer))
		}
		return scores
	}

	return &empDashboard.CompetencyScores{
		Leadership: competencyAverage(review.Self.Leadership,
			collect(func(c empDashboard.CompetencySet) float64 { return c.Leadership })),
		Quality: competencyAverage(review.Self.Quality,
			collect(func(c empDashboard.CompetencySet) float64 { return c.Quality })),
		Reliability: competencyAverage(review.Self.Reliability,
			collect(func(c empDashboard.CompetencySet) float64 { return c.Reliability })),
		Communication: competencyAverage(review.Self.Communication,
			collect(func(c empDashboard.CompetencySet) float64 { return c.Communication })),
		Initiative: competencyAverage(review.Self.Initiative,
			collect(func(c empDashboard.CompetencySet) float64 { return c.Initiative })),
	}
}

func buildRecentLeaves(rows []empDashboard.LeaveRequestRow) []empDashboard.LeaveRequestItem {
	items := make([]empDashboard.LeaveRequestItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, empDashboard.LeaveRequestItem{
			ID:            row.ID,
			LeaveType:     row.LeaveType,
			StartDate:     row.StartDate.Format("2006-01-02"),
			EndDate:       row.EndDate.Format("2006-01-02"),
			Status:        row.Status,
			DaysRequested: row.DaysRequested,
		})
	}
	return items
}

func buildRecentAttendance(rows []empDashboard.AttendanceRow) []empDashboard.AttendanceItem {
	items := make([]empDashboard.AttendanceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, empDashboard.AttendanceItem{
			ID:       row.ID,
			Date:     row.Date.Format("2006-01-02"),
			ClockIn:  formatClock(row.ClockIn),
			ClockOut: formatClock(row.ClockOut),
			Status:   row.Status,
		})
	}
	return items
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04")
	return &formatted
}

func buildUpcomingReviews(cycles []empDashboard.ReviewCycleRow, submittedIDs []string) []empDashboard.UpcomingReviewItem {
	submitted := make(map[string]bool, len(submittedIDs))
	for _, id := range submittedIDs {
		submitted[id] = true
	}

	items := make([]empDashboard.UpcomingReviewItem, 0, len(cycles))
	for _, cycle := range cycles {
		items = append(items, empDashboard.UpcomingReviewItem{
			CycleID:      cycle.ID,
			CycleName:    cycle.Name,
			EndDate:      cycle.EndDate.Format(time.RFC3339),
			HasSubmitted: submitted[cycle.ID],
		})
	}
	return items
}
