package rbac

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Policy grants role the action on resource. "*" grants every action.
type Policy struct {
	Role     string
	Resource string
	Action   string
}
