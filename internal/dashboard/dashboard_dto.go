package dashboard

import (
	"time"

	"go-hris-console/internal/upstream"
)

type Stats struct {
	TotalEmployees   int     `json:"totalEmployees"`
	TotalDepartments int     `json:"totalDepartments"`
	PendingRequests  int     `json:"pendingRequests"`
	TotalPayroll     float64 `json:"totalPayroll"`
	UpcomingMeetings int     `json:"upcomingMeetings"`
	TotalLeaves      int     `json:"totalLeaves"`
	ActiveEmployees  int     `json:"activeEmployees"`
}

type ActivityType string

const (
	ActivityRequest  ActivityType = "request"
	ActivityMeeting  ActivityType = "meeting"
	ActivityPayroll  ActivityType = "payroll"
	ActivityEmployee ActivityType = "employee"
	ActivityLeave    ActivityType = "leave"
)

// Activity is one synthetic feed entry, rebuilt on every load.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Time        time.Time    `json:"time"`
	Status      string       `json:"status,omitempty"`
}

// Overview is the admin dashboard payload. Error carries the banner text
// when the batch could not be aggregated; Stats are zero in that case.
type Overview struct {
	Stats            Stats      `json:"stats"`
	RecentActivities []Activity `json:"recentActivities"`
	Error            string     `json:"error,omitempty"`
	FetchedAt        time.Time  `json:"fetchedAt"`
}

// Snapshot holds the decoded lists of one batch.
type Snapshot struct {
	Employees   []upstream.Record
	Departments []upstream.Record
	Requests    []upstream.Record
	Payroll     []upstream.Record
	Meetings    []upstream.Record
	Leaves      []upstream.Record
}

func (s *Snapshot) set(resource upstream.Resource, list []upstream.Record) {
	switch resource {
	case upstream.ResourceEmployees:
		s.Employees = list
	case upstream.ResourceDepartments:
		s.Departments = list
	case upstream.ResourceRequests:
		s.Requests = list
	case upstream.ResourcePayroll:
		s.Payroll = list
	case upstream.ResourceMeetings:
		s.Meetings = list
	case upstream.ResourceLeaves:
		s.Leaves = list
	}
}
