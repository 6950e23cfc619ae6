package dto

import (
	"net/http"
	"petcare/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. Unparseable or non-positive numbers
// fall back to the defaults, limit is capped at constant.DefaultValueMaxLimit and a bare
// sort_by sorts ascending.
func (q *QueryParams) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.Page = positiveInt(query.Get(constant.RequestParamPage), constant.DefaultValuePage)
	q.Limit = min(positiveInt(query.Get(constant.RequestParamLimit), constant.DefaultValueLimit), constant.DefaultValueMaxLimit)
	q.SortBy = query.Get(constant.RequestParamSortBy)

	switch dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); {
	case dir == SortDirAsc || dir == SortDirDesc:
		q.SortDir = dir
	case q.SortBy != "":
		q.SortDir = SortDirAsc
	}
}

// Offset is the number of rows skipped for the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
