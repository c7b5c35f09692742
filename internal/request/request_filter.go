package request

import "strings"

// FilterSet is one set of per-column criteria. Empty fields match
// everything.
type FilterSet struct {
	RequestID     string `json:"request_id"`
	EmployeeName  string `json:"employee_name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	HRHandlerName string `json:"hr_handler_name"`
}

func (f FilterSet) IsZero() bool {
	return f == FilterSet{}
}

// Match is a conjunction: case-insensitive substring on the text columns,
// exact match on status.
func (f FilterSet) Match(r InternalRequest) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return containsFold(r.RequestID, f.RequestID) &&
		containsFold(r.EmployeeName, f.EmployeeName) &&
		containsFold(r.Category, f.Category) &&
		containsFold(r.Description, f.Description) &&
		containsFold(r.HRHandlerName, f.HRHandlerName)
}

// Apply returns the matching requests in their original order.
func (f FilterSet) Apply(list []InternalRequest) []InternalRequest {
	out := make([]InternalRequest, 0, len(list))
	for _, r := range list {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

// FilterState separates what the user is typing (Draft) from what the
// table shows (Applied). Only Commit moves criteria into effect.
type FilterState struct {
	Draft   FilterSet `json:"draft"`
	Applied FilterSet `json:"applied"`
}

func (s FilterState) WithDraft(draft FilterSet) FilterState {
	s.Draft = draft
	return s
}

func (s FilterState) Commit() FilterState {
	s.Applied = s.Draft
	return s
}

func (s FilterState) Clear() FilterState {
	return FilterState{}
}

// Visible is the subset of list the table renders.
func (s FilterState) Visible(list []InternalRequest) []InternalRequest {
	return s.Applied.Apply(list)
}
