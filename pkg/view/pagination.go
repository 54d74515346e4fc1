package view

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// PagesFromTotal computes the page count, never below 1.
func PagesFromTotal(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	p := int((total + int64(limit) - 1) / int64(limit))
	if p < 1 {
		return 1
	}
	return p
}
