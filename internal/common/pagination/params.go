package pagination

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Sort selects the listing order.
type Sort string

const (
	// SortRecent orders by createdAt descending.
	SortRecent Sort = "recent"
	// SortID orders by id ascending; the default when no recent sort
	// is requested.
	SortID Sort = "id"
)

// Params represents offset-pagination query parameters.
type Params struct {
	Page   int    // 1-based page number
	Offset int    // row offset; kept explicit because clients may send a raw offset
	Limit  int    // items per page, clamped to [1, Config.MaxLimit]
	Search string // case-insensitive substring filter, empty means no filter
	Sort   Sort
}

// ParseQueryParams parses offset-pagination parameters from the request
// query string. Out-of-range values are silently clamped, never rejected:
//
//   - page: positive integer, defaults to config.DefaultPage
//   - offset: raw row offset; when present it overrides page
//   - limit: clamped to [1, config.MaxLimit], defaults to config.DefaultLimit
//   - search: trimmed substring filter
//   - sort: "recent" for createdAt descending, anything else for id ascending
func ParseQueryParams(r *http.Request, config Config) Params {
	q := r.URL.Query()

	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}
	if params.Limit < 1 {
		params.Limit = 1
	}
	if params.Limit > config.MaxLimit {
		params.Limit = config.MaxLimit
	}

	if pageStr := q.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			params.Page = page
		}
	}
	params.Offset = CalculateOffset(params.Page, params.Limit)

	if offsetStr := q.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			params.Offset = offset
			params.Page = offset/params.Limit + 1
		}
	}

	params.Search = strings.TrimSpace(q.Get("search"))

	if Sort(q.Get("sort")) == SortRecent {
		params.Sort = SortRecent
	} else {
		params.Sort = SortID
	}

	return params
}

// CursorParams represents cursor-pagination query parameters for a
// comment thread.
type CursorParams struct {
	After *Position // decoded cursor, nil for the first page
	Limit int
}

// ParseCursorParams parses cursor-pagination parameters. Unlike the
// offset strategy, an invalid limit is rejected outright:
//
//   - cursor: opaque token from a previous page, optional
//   - limit: defaults to config.DefaultLimit; values outside
//     [1, config.MaxLimit] are an error, not clamped
func ParseCursorParams(r *http.Request, config CursorConfig) (CursorParams, error) {
	q := r.URL.Query()

	params := CursorParams{Limit: config.DefaultLimit}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	if token := q.Get("cursor"); token != "" {
		pos, err := DecodeCursor(token)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: cursor is not a valid token")
		}
		params.After = &pos
	}

	return params, nil
}
