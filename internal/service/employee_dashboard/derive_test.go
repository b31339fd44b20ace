package employee_dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	empDashboard "github.com/pulsehr/pulsehr-backend-go/internal/domain/employee_dashboard"
)

func strPtr(s string) *string { return &s }

func TestProjectScoresWeightedSla(t *testing.T) {
	assignment := empDashboard.ProjectAssignmentRow{
		SlaScores: []empDashboard.SlaScoreRow{
			{ScoreAchieved: 100, WeightPercentage: 50},
			{ScoreAchieved: 80, WeightPercentage: 50},
		},
		QualityScores: []empDashboard.QualityScoreRow{
			{IsAchieved: true},
			{IsAchieved: true},
			{IsAchieved: false},
		},
	}

	sla, achieved, total := projectScores(assignment)

	// best possible = (50+50)*120 = 12000; 180/12000*100 = 1.5
	assert.Equal(t, 1.5, sla)
	assert.Equal(t, 2, achieved)
	assert.Equal(t, 3, total)
}

func TestProjectScoresZeroWeight(t *testing.T) {
	assignment := empDashboard.ProjectAssignmentRow{
		SlaScores: []empDashboard.SlaScoreRow{
			{ScoreAchieved: 40, WeightPercentage: 0},
		},
	}

	sla, achieved, total := projectScores(assignment)
	assert.Equal(t, 0.0, sla)
	assert.Equal(t, 0, achieved)
	assert.Equal(t, 0, total)
}

func TestProjectScoresNoChildRows(t *testing.T) {
	sla, achieved, total := projectScores(empDashboard.ProjectAssignmentRow{})
	assert.Equal(t, 0.0, sla)
	assert.Equal(t, 0, achieved)
	assert.Equal(t, 0, total)
}

func TestBackfillProjectScores(t *testing.T) {
	overview := empDashboard.PerformanceOverview{Quarter: "2025-Q1"}
	projects := []empDashboard.ActiveProjectItem{
		{SlaPercentage: 80, QualityAchieved: 3, QualityTotal: 4},
		{SlaPercentage: 90, QualityAchieved: 1, QualityTotal: 1},
	}

	backfillProjectScores(&overview, projects)

	require.NotNil(t, overview.SlaScore)
	assert.Equal(t, 85.0, *overview.SlaScore)
	require.NotNil(t, overview.WorkQualityScore)
	assert.Equal(t, 80.0, *overview.WorkQualityScore)
}

func TestBackfillProjectScoresNoProjects(t *testing.T) {
	overview := empDashboard.PerformanceOverview{Quarter: "2025-Q1"}

	backfillProjectScores(&overview, nil)

	assert.Nil(t, overview.SlaScore)
	assert.Nil(t, overview.WorkQualityScore)
}

func TestBackfillProjectScoresNoQualityItems(t *testing.T) {
	overview := empDashboard.PerformanceOverview{}
	projects := []empDashboard.ActiveProjectItem{
		{SlaPercentage: 50},
	}

	backfillProjectScores(&overview, projects)

	require.NotNil(t, overview.WorkQualityScore)
	assert.Equal(t, 0.0, *overview.WorkQualityScore)
}

func TestCompetencyAverage(t *testing.T) {
	// (4+3+5)/3 = 4.0 raw; 4/5*100 = 80
	assert.Equal(t, 80.0, competencyAverage(4, []float64{3, 5}))

	// self only: 5/5*100 = 100
	assert.Equal(t, 100.0, competencyAverage(5, nil))
}

func TestCompetencyScores(t *testing.T) {
	review := &empDashboard.CompletedReviewRow{
		Self: empDashboard.CompetencySet{
			Leadership: 4, Quality: 5, Reliability: 3, Communication: 4, Initiative: 2,
		},
		Peers: []empDashboard.CompetencySet{
			{Leadership: 2, Quality: 5, Reliability: 5, Communication: 4, Initiative: 4},
		},
	}

	scores := competencyScores(review)

	require.NotNil(t, scores)
	assert.Equal(t, 60.0, scores.Leadership)
	assert.Equal(t, 100.0, scores.Quality)
	assert.Equal(t, 80.0, scores.Reliability)
	assert.Equal(t, 80.0, scores.Communication)
	assert.Equal(t, 60.0, scores.Initiative)
}

func TestCompetencyScoresNoCompletedReview(t *testing.T) {
	assert.Nil(t, competencyScores(nil))
}

func TestAttendanceRate(t *testing.T) {
	onTime := strPtr("On Time")
	late := strPtr("Late")
	absent := strPtr("Absent")

	tests := []struct {
		name string
		logs []empDashboard.AttendanceRow
		want float64
	}{
		{"empty window defaults to full", nil, 100},
		{"all on time", []empDashboard.AttendanceRow{{Status: onTime}, {Status: onTime}}, 100},
		{"nil status counts as on time", []empDashboard.AttendanceRow{{Status: nil}}, 100},
		{"late day lowers the rate", []empDashboard.AttendanceRow{
			{Status: onTime}, {Status: onTime}, {Status: onTime}, {Status: onTime},
			{Status: onTime}, {Status: onTime}, {Status: late},
		}, 85.7},
		{"four of seven on time", []empDashboard.AttendanceRow{
			{Status: onTime}, {Status: onTime}, {Status: late}, {Status: nil}, {Status: onTime},
			{Status: absent}, {Status: absent},
		}, 57.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attendanceRate(tt.logs))
		})
	}
}

func TestBalanceOrZero(t *testing.T) {
	balance := 12.5
	assert.Equal(t, 12.5, balanceOrZero(&balance))
	assert.Equal(t, 0.0, balanceOrZero(nil))
}

func TestBuildRecentAttendanceFormatsClocks(t *testing.T) {
	clockIn := time.Date(2025, 2, 14, 8, 45, 0, 0, time.UTC)
	rows := []empDashboard.AttendanceRow{
		{
			ID:      "a1",
			Date:    time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
			ClockIn: &clockIn,
			Status:  strPtr("On Time"),
		},
	}

	items := buildRecentAttendance(rows)

	require.Len(t, items, 1)
	assert.Equal(t, "2025-02-14", items[0].Date)
	require.NotNil(t, items[0].ClockIn)
	assert.Equal(t, "08:45", *items[0].ClockIn)
	assert.Nil(t, items[0].ClockOut)
}

func TestBuildUpcomingReviews(t *testing.T) {
	cycles := []empDashboard.ReviewCycleRow{
		{ID: "2025-Q1", Name: "Q1 2025", EndDate: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "2025-Q2", Name: "Q2 2025", EndDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
	}

	items := buildUpcomingReviews(cycles, []string{"2025-Q1"})

	require.Len(t, items, 2)
	assert.True(t, items[0].HasSubmitted)
	assert.False(t, items[1].HasSubmitted)
	assert.Equal(t, "2025-03-31T00:00:00Z", items[0].EndDate)
}

func TestBuildUpcomingReviewsEmpty(t *testing.T) {
	items := buildUpcomingReviews(nil, nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
