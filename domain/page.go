package domain

const (
	ChildPageSize   = 20
	DefaultPageSize = 25
)

type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func (m PageMeta) Offset() int {
	return (m.Page - 1) * m.PerPage
}
