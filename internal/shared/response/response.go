package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxPageSize caps page_size on paginated list endpoints.
const MaxPageSize = 100

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// PageBounds reads page/page_size from the query string and returns the
// slice window for a list of n items. ok is false when the caller did not
// ask for pagination.
func PageBounds(c *gin.Context, n int) (start, end int, meta PaginationMeta, ok bool) {
	if c.Query("page") == "" && c.Query("page_size") == "" {
		return 0, n, PaginationMeta{}, false
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	// compare before multiplying so a huge page cannot overflow
	if page-1 >= (n+pageSize-1)/pageSize {
		return n, n, NewPaginationMeta(int64(n), page, pageSize), true
	}
	start = (page - 1) * pageSize
	end = start + pageSize
	if end > n {
		end = n
	}
	return start, end, NewPaginationMeta(int64(n), page, pageSize), true
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:    true,
		Data:  data,
		Meta:  meta,
		Error: nil,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   false,
		Data: nil,
		Meta: nil,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
