package dto

import (
	"net/http"
	"net/url"
	"rental/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	// MaxLimit caps the page size an admin list may request.
	MaxLimit = 100
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty,lte=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Malformed values
// are ignored. With withDefaults set, a missing page or limit falls back to the first page of
// constant.DefaultValueLimit rows.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	if page, ok := positive(query, constant.RequestParamPage); ok {
		q.Page = page
	}

	if limit, ok := positive(query, constant.RequestParamLimit); ok {
		q.Limit = min(limit, MaxLimit)
	}

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Offset is the number of rows skipped before the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positive(query url.Values, key string) (int, bool) {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil || value <= 0 {
		return 0, false
	}

	return value, true
}
