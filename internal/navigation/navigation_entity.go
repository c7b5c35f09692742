package navigation

import "go-hris-console/internal/session"

type Item struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// menus is the ordered capability list of every role. Adding a role
// without an entry here makes Build fail instead of showing another
// role's menu.
var menus = map[session.Role][]Item{
	session.RoleEmployee: {
		{Label: "Dashboard", Icon: "home", Path: "/employee/dashboard"},
		{Label: "My Attendance", Icon: "clock", Path: "/employee/attendance"},
		{Label: "Leave Requests", Icon: "calendar", Path: "/employee/leaves"},
		{Label: "My Requests", Icon: "inbox", Path: "/employee/requests"},
		{Label: "Meetings", Icon: "video", Path: "/employee/meetings"},
		{Label: "Payslips", Icon: "wallet", Path: "/employee/payslips"},
	},
	session.RoleHR: {
		{Label: "Dashboard", Icon: "home", Path: "/hr/dashboard"},
		{Label: "Employees", Icon: "users", Path: "/hr/employees"},
		{Label: "Leave Management", Icon: "calendar", Path: "/hr/leaves"},
		{Label: "Request Management", Icon: "inbox", Path: "/hr/requests"},
		{Label: "Meetings", Icon: "video", Path: "/hr/meetings"},
		{Label: "Payroll", Icon: "wallet", Path: "/hr/payroll"},
	},
	session.RoleAdmin: {
		{Label: "Dashboard", Icon: "home", Path: "/admin/dashboard"},
		{Label: "Employees", Icon: "users", Path: "/admin/employees"},
		{Label: "Departments", Icon: "building", Path: "/admin/departments"},
		{Label: "Request Management", Icon: "inbox", Path: "/admin/requests"},
		{Label: "Payroll", Icon: "wallet", Path: "/admin/payroll"},
		{Label: "Meetings", Icon: "video", Path: "/admin/meetings"},
		{Label: "Leaves", Icon: "calendar", Path: "/admin/leaves"},
		{Label: "Settings", Icon: "settings", Path: "/admin/settings"},
	},
}

type Action string

const (
	ActionProfile Action = "profile"
	ActionLogout  Action = "logout"
)

const (
	ProfilePath = "/profile"
	LoginPath   = "/login"
)

type ProfileAction struct {
	Action Action `json:"action"`
	Label  string `json:"label"`
}

var profileActions = []ProfileAction{
	{Action: ActionProfile, Label: "Profile"},
	{Action: ActionLogout, Label: "Logout"},
}

// Panel is everything the sidebar renders. A zero Panel renders nothing.
type Panel struct {
	User           *session.User   `json:"user,omitempty"`
	Items          []Item          `json:"items"`
	ProfileActions []ProfileAction `json:"profile_actions,omitempty"`
}
