package httpx

import (
	"net/http"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageParams reads page and page_size from the query string. Out of range
// values fall back to the defaults.
func PageParams(r *http.Request) (page, pageSize int) {
	query := r.URL.Query()

	page, _ = strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}
