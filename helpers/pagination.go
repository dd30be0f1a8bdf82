package helpers

import (
	"sponsorship/domain"
	"strconv"
	"strings"
)

// ResolvePage turns a raw page token into page metadata for total rows.
// A token that is not a whole number falls back to page 1. A page beyond
// the last one, or below 1, clamps to the last page. An empty set still
// has one (empty) page.
func ResolvePage(token string, total int64, perPage int) domain.PageMeta {
	if perPage <= 0 {
		perPage = domain.DefaultPageSize
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	page, err := strconv.Atoi(strings.TrimSpace(token))
	switch {
	case err != nil:
		page = 1
	case page < 1 || page > totalPages:
		page = totalPages
	}

	return domain.PageMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
