package rbac

const (
	ResourceNavigation = "navigation"
	ResourceSession    = "session"
	ResourceDashboard  = "dashboard"
	ResourceRequest    = "request"

	ActionRead    = "read"
	ActionUpdate  = "update"
	ActionRefresh = "refresh"
	ActionLogout  = "logout"
)

// DefaultPolicies is the console's access table. ADMIN inherits HR.
var DefaultPolicies = []Policy{
	{Role: "EMPLOYEE", Resource: ResourceNavigation, Action: ActionRead},
	{Role: "EMPLOYEE", Resource: ResourceSession, Action: "*"},
	{Role: "HR", Resource: ResourceNavigation, Action: ActionRead},
	{Role: "HR", Resource: ResourceSession, Action: "*"},
	{Role: "HR", Resource: ResourceRequest, Action: ActionRead},
	{Role: "HR", Resource: ResourceRequest, Action: ActionUpdate},
	{Role: "ADMIN", Resource: ResourceDashboard, Action: ActionRead},
	{Role: "ADMIN", Resource: ResourceDashboard, Action: ActionRefresh},
}

// roleInheritance lists (role, inherited role) pairs.
var roleInheritance = [][2]string{
	{"ADMIN", "HR"},
}
