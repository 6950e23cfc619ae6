package dto_test

import (
	"net/http/httptest"
	"petcare/shared/dto"
	"petcare/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	var metadata dto.Metadata

	metadata.FromModel(model.Metadata{
		CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		ModifiedAt: time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC),
		CreatedBy:  "client-1",
		ModifiedBy: "admin-1",
	})

	assert.Equal(t, dto.Metadata{
		CreatedAt:  "2025-03-01T09:00:00Z",
		ModifiedAt: "2025-03-02T09:30:00Z",
		CreatedBy:  "client-1",
		ModifiedBy: "admin-1",
	}, metadata)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected dto.QueryParams
	}{
		{
			name:     "defaults",
			query:    "",
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "all parameters",
			query:    "page=3&limit=25&sort_by=scheduled_date&sort_dir=desc",
			expected: dto.QueryParams{Page: 3, Limit: 25, SortBy: "scheduled_date", SortDir: dto.SortDirDesc},
		},
		{
			name:     "sort_by alone sorts ascending",
			query:    "sort_by=scheduled_date",
			expected: dto.QueryParams{Page: 1, Limit: 10, SortBy: "scheduled_date", SortDir: dto.SortDirAsc},
		},
		{
			name:     "sort_dir alone is kept",
			query:    "sort_dir=DESC",
			expected: dto.QueryParams{Page: 1, Limit: 10, SortDir: dto.SortDirDesc},
		},
		{
			name:     "garbage falls back to defaults",
			query:    "page=abc&limit=-5&sort_dir=sideways",
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "zero page",
			query:    "page=0",
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Page: 1, Limit: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/v1/appointments?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(request)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 10}, expected: 0},
		{name: "third page", params: dto.QueryParams{Page: 3, Limit: 25}, expected: 50},
		{name: "unset page", params: dto.QueryParams{Limit: 10}, expected: 0},
		{name: "unset limit", params: dto.QueryParams{Page: 4}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Offset())
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name:         "eq with table",
			filter:       dto.Filter{Field: "status", Value: "scheduled", Operator: dto.FilterOperatorEq, Table: "appointments"},
			expectedSQL:  "appointments.status = :status",
			expectedArgs: map[string]any{"status": "scheduled"},
		},
		{
			name:         "not eq",
			filter:       dto.Filter{Field: "status", Value: "cancelled", Operator: dto.FilterOperatorNotEq},
			expectedSQL:  "status != :status",
			expectedArgs: map[string]any{"status": "cancelled"},
		},
		{
			name:         "range bound with arg name",
			filter:       dto.Filter{ArgName: "work_date_from", Field: "work_date", Value: "2025-03-01", Operator: dto.FilterOperatorGreaterEq},
			expectedSQL:  "work_date >= :work_date_from",
			expectedArgs: map[string]any{"work_date_from": "2025-03-01"},
		},
		{
			name:         "less eq",
			filter:       dto.Filter{ArgName: "work_date_to", Field: "work_date", Value: "2025-03-31", Operator: dto.FilterOperatorLessEq},
			expectedSQL:  "work_date <= :work_date_to",
			expectedArgs: map[string]any{"work_date_to": "2025-03-31"},
		},
		{
			name:         "like",
			filter:       dto.Filter{Field: "full_name", Value: "dana", Operator: dto.FilterOperatorLike},
			expectedSQL:  "LOWER(full_name) LIKE LOWER(:full_name)",
			expectedArgs: map[string]any{"full_name": "%dana%"},
		},
		{
			name:         "in with slice",
			filter:       dto.Filter{Field: "id", Value: []string{"p1", "p2"}, Operator: dto.FilterOperatorIn, Table: "pets"},
			expectedSQL:  "pets.id IN (:id_0, :id_1)",
			expectedArgs: map[string]any{"id_0": "p1", "id_1": "p2"},
		},
		{
			name:         "plain query",
			filter:       dto.Filter{Value: "walker_id IS NOT NULL OR status = 'scheduled'", Operator: dto.FilterPlainQuery},
			expectedSQL:  "(walker_id IS NOT NULL OR status = 'scheduled')",
			expectedArgs: map[string]any{},
		},
		{
			name:         "is null",
			filter:       dto.Filter{Field: "scheduled_time", Operator: dto.FilterIsNull, Table: "appointments"},
			expectedSQL:  "appointments.scheduled_time IS NULL",
			expectedArgs: map[string]any{},
		},
		{
			name:         "is not null",
			filter:       dto.Filter{Field: "walker_id", Operator: dto.FilterIsNotNull},
			expectedSQL:  "walker_id IS NOT NULL",
			expectedArgs: map[string]any{},
		},
		{
			name:         "unknown operator",
			filter:       dto.Filter{Field: "status", Value: "x", Operator: "between"},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "scheduled_date", Value: "2025-03-10", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "walker_id", Value: "w1", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "walker_id", Operator: dto.FilterIsNull},
				},
			},
			"ignored",
		},
	}

	sql, args := group.GetWhereClause()

	assert.Equal(t, "(scheduled_date = :scheduled_date AND (walker_id = :walker_id OR walker_id IS NULL))", sql)
	assert.Equal(t, map[string]any{"scheduled_date": "2025-03-10", "walker_id": "w1"}, args)

	empty := dto.FilterGroup{}
	sql, args = empty.GetWhereClause()

	assert.Empty(t, sql)
	assert.Empty(t, args)
}
