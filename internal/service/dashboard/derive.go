package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
)

// Placeholder reviewer counts for the pending reviews list.
// TODO: derive total_reviewers from peer review assignments per cycle.
const (
	defaultReviewersPending = 0
	defaultTotalReviewers   = 5
)

// Distribution thresholds over overall_percentage.
const (
	thresholdOutstanding      = 95
	thresholdAboveExpectation = 85
	thresholdMeetsExpectation = 75
	thresholdBelowExpectation = 60
)

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// classifyAttendance counts on-time and late logs. A NULL status means the
// log was clocked without incident and counts as on time; statuses other
// than "On Time"/"Late" do not count toward either.
func classifyAttendance(logs []dashboard.AttendanceLogRow) (onTime, late int64) {
	for _, log := range logs {
		switch {
		case log.Status == nil || *log.Status == dashboard.AttendanceOnTime:
			onTime++
		case *log.Status == dashboard.AttendanceLate:
			late++
		}
	}
	return onTime, late
}

// absentCount is the remainder of the headcount, clamped at zero so stale
// approved leave rows can never produce a negative count.
func absentCount(totalEmployees, onTime, late, onLeave int64) int64 {
	absent := totalEmployees - onTime - late - onLeave
	if absent < 0 {
		return 0
	}
	return absent
}

// attendanceRate is the accounted-for share of the headcount as a
// percentage, one decimal. Zero headcount yields 0.
func attendanceRate(totalEmployees, onTime, late, onLeave int64) float64 {
	if totalEmployees == 0 {
		return 0
	}
	present := float64(onTime + late + onLeave)
	return roundTenth(present / float64(totalEmployees) * 100)
}

// buildDistribution buckets every summary by its overall percentage and
// returns the average, nil when there are no summaries. Each summary lands
// in exactly one bucket.
func buildDistribution(summaries []dashboard.ReviewSummaryRow) (dashboard.PerformanceDistribution, *float64) {
	var dist dashboard.PerformanceDistribution
	if len(summaries) == 0 {
		return dist, nil
	}

	var total float64
	for _, summary := range summaries {
		pct := summary.OverallPercentage
		total += pct

		switch {
		case pct >= thresholdOutstanding:
			dist.Outstanding++
		case pct >= thresholdAboveExpectation:
			dist.AboveExpectation++
		case pct >= thresholdMeetsExpectation:
			dist.MeetsExpectation++
		case pct >= thresholdBelowExpectation:
			dist.BelowExpectation++
		default:
			dist.NeedsImprovement++
		}
	}

	avg := roundTenth(total / float64(len(summaries)))
	return dist, &avg
}

// sortByPercentageDesc returns a copy of summaries sorted by overall
// percentage descending. The sort is stable so equal percentages keep their
// fetch order.
func sortByPercentageDesc(summaries []dashboard.ReviewSummaryRow) []dashboard.ReviewSummaryRow {
	sorted := make([]dashboard.ReviewSummaryRow, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OverallPercentage > sorted[j].OverallPercentage
	})
	return sorted
}

func toRankedEmployee(summary dashboard.ReviewSummaryRow) dashboard.RankedEmployee {
	return dashboard.RankedEmployee{
		EmployeeID:        summary.EmployeeID,
		EmployeeName:      summary.EmployeeName,
		EmployeeAvatar:    summary.EmployeeAvatar,
		EmployeeJobTitle:  summary.EmployeeJobTitle,
		OverallPercentage: summary.OverallPercentage,
	}
}

// rankTopPerformers returns the prefix of the descending sort, capped at
// limit.
func rankTopPerformers(summaries []dashboard.ReviewSummaryRow, limit int) []dashboard.RankedEmployee {
	sorted := sortByPercentageDesc(summaries)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	top := make([]dashboard.RankedEmployee, 0, len(sorted))
	for _, summary := range sorted {
		top = append(top, toRankedEmployee(summary))
	}
	return top
}

// flagNeedsAttention returns summaries below the meets-expectation
// threshold, descending, capped at limit, each annotated with a reason.
func flagNeedsAttention(summaries []dashboard.ReviewSummaryRow, limit int) []dashboard.AttentionEmployee {
	flagged := make([]dashboard.AttentionEmployee, 0, limit)
	for _, summary := range sortByPercentageDesc(summaries) {
		if summary.OverallPercentage >= thresholdMeetsExpectation {
			continue
		}
		if len(flagged) == limit {
			break
		}

		reason := "Performance below expectation"
		if summary.OverallPercentage < thresholdBelowExpectation {
			reason = "Performance significantly below target"
		}
		flagged = append(flagged, dashboard.AttentionEmployee{
			RankedEmployee: toRankedEmployee(summary),
			Reason:         reason,
		})
	}
	return flagged
}

func buildPendingReviews(rows []dashboard.PendingReviewRow) []dashboard.PendingReviewItem {
	items := make([]dashboard.PendingReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dashboard.PendingReviewItem{
			EmployeeID:       row.EmployeeID,
			EmployeeName:     row.EmployeeName,
			EmployeeAvatar:   row.EmployeeAvatar,
			EmployeeJobTitle: row.EmployeeJobTitle,
			CycleID:          row.CycleID,
			CycleName:        row.CycleName,
			ReviewersPending: defaultReviewersPending,
			TotalReviewers:   defaultTotalReviewers,
		})
	}
	return items
}

func buildPendingLeaves(rows []dashboard.PendingLeaveRow) []dashboard.PendingLeaveItem {
	items := make([]dashboard.PendingLeaveItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dashboard.PendingLeaveItem{
			ID:            row.ID,
			UserID:        row.UserID,
			UserName:      row.UserName,
			UserAvatar:    row.UserAvatar,
			LeaveType:     row.LeaveType,
			StartDate:     row.StartDate.Format("2006-01-02"),
			EndDate:       row.EndDate.Format("2006-01-02"),
			DaysRequested: row.DaysRequested,
			Reason:        row.Reason,
			CreatedAt:     row.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}

type activityEntry struct {
	item dashboard.ActivityItem
	at   time.Time
}

// buildActivityFeed merges the recent review and leave windows into one
// feed, newest first, truncated to limit. The merge sort is stable: entries
// with equal timestamps keep their fetch order.
func buildActivityFeed(reviews []dashboard.RecentReviewRow, leaves []dashboard.RecentLeaveRow, limit int) []dashboard.ActivityItem {
	entries := make([]activityEntry, 0, len(reviews)+len(leaves))

	for _, review := range reviews {
		entries = append(entries, activityEntry{
			at: review.CreatedAt,
			item: dashboard.ActivityItem{
				ID:          "review-" + review.EmployeeID,
				Type:        dashboard.ActivityReview,
				UserName:    review.UserName,
				UserAvatar:  review.UserAvatar,
				Description: "Submitted 360 review",
				Timestamp:   review.CreatedAt.Format(time.RFC3339),
			},
		})
	}

	for _, leave := range leaves {
		activityType := dashboard.ActivityLeaveRequest
		description := fmt.Sprintf("Requested %s leave", leave.LeaveType)
		switch leave.Status {
		case dashboard.LeaveStatusApproved:
			activityType = dashboard.ActivityLeaveApproved
			description = fmt.Sprintf("Leave approved (%s)", leave.LeaveType)
		case dashboard.LeaveStatusRejected:
			activityType = dashboard.ActivityLeaveRejected
			description = fmt.Sprintf("Leave rejected (%s)", leave.LeaveType)
		}

		entries = append(entries, activityEntry{
			at: leave.CreatedAt,
			item: dashboard.ActivityItem{
				ID:          "leave-" + leave.ID,
				Type:        activityType,
				UserName:    leave.UserName,
				UserAvatar:  leave.UserAvatar,
				Description: description,
				Timestamp:   leave.CreatedAt.Format(time.RFC3339),
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	feed := make([]dashboard.ActivityItem, 0, len(entries))
	for _, entry := range entries {
		feed = append(feed, entry.item)
	}
	return feed
}
