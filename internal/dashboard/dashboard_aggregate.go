package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"go-hris-console/internal/upstream"
)

const (
	maxActivities       = 6
	feedRequests        = 3
	feedMeetings        = 2
	feedPayroll         = 1
	feedPendingLeaves   = 2
	statusPending       = "pending"
	defaultRequestTitle = "Internal request"
)

var meetingTimeKeys = []string{"date_time", "meeting_date", "date"}

// ComputeStats derives the summary counters of a snapshot.
func ComputeStats(snap Snapshot, now time.Time) Stats {
	stats := Stats{
		TotalEmployees:   len(snap.Employees),
		TotalDepartments: len(snap.Departments),
		TotalLeaves:      len(snap.Leaves),
	}

	for _, e := range snap.Employees {
		if !e.IsFalse("is_active") {
			stats.ActiveEmployees++
		}
	}
	for _, r := range snap.Requests {
		if r.EqualFold("status", statusPending) {
			stats.PendingRequests++
		}
	}
	for _, p := range snap.Payroll {
		stats.TotalPayroll += p.Number("total_amount", "total")
	}
	for _, m := range snap.Meetings {
		if isUpcoming(m, now) {
			stats.UpcomingMeetings++
		}
	}
	return stats
}

func isUpcoming(m upstream.Record, now time.Time) bool {
	t, ok := m.Time(meetingTimeKeys...)
	return ok && t.After(now)
}

// BuildActivityFeed merges the newest items of a snapshot, newest first.
// Entries without a readable timestamp are dropped.
func BuildActivityFeed(snap Snapshot, now time.Time) []Activity {
	feed := make([]Activity, 0, feedRequests+feedMeetings+feedPayroll+feedPendingLeaves)

	for i, r := range head(snap.Requests, feedRequests) {
		title := r.Text("category")
		if title == "" {
			title = defaultRequestTitle
		}
		feed = appendTimed(feed, r, []string{"created_at", "updated_at"}, Activity{
			ID:          recordID(r, ActivityRequest, i, "request_id", "id"),
			Type:        ActivityRequest,
			Title:       title,
			Description: describe(r.Text("employee_name"), r.Text("description")),
			Status:      r.Text("status"),
		})
	}

	upcoming := make([]upstream.Record, 0, feedMeetings)
	for _, m := range snap.Meetings {
		if len(upcoming) == feedMeetings {
			break
		}
		if isUpcoming(m, now) {
			upcoming = append(upcoming, m)
		}
	}
	for i, m := range upcoming {
		title := m.Text("title", "topic")
		if title == "" {
			title = "Upcoming meeting"
		}
		feed = appendTimed(feed, m, meetingTimeKeys, Activity{
			ID:          recordID(m, ActivityMeeting, i, "meeting_id", "id"),
			Type:        ActivityMeeting,
			Title:       title,
			Description: m.Text("location", "description"),
		})
	}

	for i, p := range head(snap.Payroll, feedPayroll) {
		amount := p.Number("total_amount", "total")
		feed = appendTimed(feed, p, []string{"created_at", "pay_date", "period_end"}, Activity{
			ID:          recordID(p, ActivityPayroll, i, "payroll_id", "id"),
			Type:        ActivityPayroll,
			Title:       "Payroll processed",
			Description: describe(p.Text("employee_name", "period"), "Total "+strconv.FormatFloat(amount, 'f', 2, 64)),
			Status:      p.Text("status"),
		})
	}

	pending := make([]upstream.Record, 0, feedPendingLeaves)
	for _, l := range snap.Leaves {
		if len(pending) == feedPendingLeaves {
			break
		}
		if l.EqualFold("status", statusPending) {
			pending = append(pending, l)
		}
	}
	for i, l := range pending {
		feed = appendTimed(feed, l, []string{"created_at", "start_date"}, Activity{
			ID:          recordID(l, ActivityLeave, i, "leave_id", "id"),
			Type:        ActivityLeave,
			Title:       "Leave request",
			Description: describe(l.Text("employee_name"), l.Text("leave_type", "reason")),
			Status:      l.Text("status"),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Time.After(feed[j].Time)
	})
	if len(feed) > maxActivities {
		feed = feed[:maxActivities]
	}
	return feed
}

func head(list []upstream.Record, n int) []upstream.Record {
	if len(list) < n {
		return list
	}
	return list[:n]
}

func appendTimed(feed []Activity, r upstream.Record, timeKeys []string, a Activity) []Activity {
	t, ok := r.Time(timeKeys...)
	if !ok {
		return feed
	}
	a.Time = t
	return append(feed, a)
}

func recordID(r upstream.Record, kind ActivityType, i int, keys ...string) string {
	if id := r.Text(keys...); id != "" {
		return string(kind) + "-" + id
	}
	return fmt.Sprintf("%s-%d", kind, i)
}

func describe(subject, detail string) string {
	switch {
	case subject == "":
		return detail
	case detail == "":
		return subject
	default:
		return subject + ": " + detail
	}
}
