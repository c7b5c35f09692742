package request

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListResult is what the request table renders: the visible rows, the
// filter state that produced them and the pending flash message.
type ListResult struct {
	Requests []InternalRequest `json:"requests"`
	Total    int               `json:"total"`
	Filters  FilterState       `json:"filters"`
	Flash    string            `json:"flash,omitempty"`
}
