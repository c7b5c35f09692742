package upstream

// Resource is one of the list endpoints the console reads.
type Resource string

const (
	ResourceEmployees   Resource = "employees"
	ResourceDepartments Resource = "departments"
	ResourceRequests    Resource = "requests"
	ResourcePayroll     Resource = "payroll"
	ResourceMeetings    Resource = "meetings"
	ResourceLeaves      Resource = "leaves"
)

var resourcePaths = map[Resource]string{
	ResourceEmployees:   "/api/admin/employees",
	ResourceDepartments: "/api/departments",
	ResourceRequests:    "/api/requests",
	ResourcePayroll:     "/api/payroll",
	ResourceMeetings:    "/api/meetings",
	ResourceLeaves:      "/api/leaves",
}

// DashboardResources is the fixed read set of the admin overview.
var DashboardResources = []Resource{
	ResourceEmployees,
	ResourceDepartments,
	ResourceRequests,
	ResourcePayroll,
	ResourceMeetings,
	ResourceLeaves,
}

func (r Resource) Path() string {
	return resourcePaths[r]
}

func (r Resource) Valid() bool {
	_, ok := resourcePaths[r]
	return ok
}
