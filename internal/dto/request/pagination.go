package request

import "strconv"

// ListRequest holds the list-view query parameters. Page size is fixed by
// the service; only the page number and sort field are caller-supplied.
type ListRequest struct {
	Page   int    `json:"page"`
	SortBy string `json:"sort_by"`
}

// NewListRequest parses the raw query values. A missing, non-numeric or
// non-positive page becomes page 1; sort falls back to title.
func NewListRequest(pageRaw, sortBy string) *ListRequest {
	page, err := strconv.Atoi(pageRaw)
	if err != nil || page < 1 {
		page = 1
	}

	if sortBy == "" {
		sortBy = "title"
	}

	return &ListRequest{
		Page:   page,
		SortBy: sortBy,
	}
}
