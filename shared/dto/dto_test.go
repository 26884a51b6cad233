package dto_test

import (
	"net/http"
	"net/http/httptest"
	"rental/shared/constant"
	"rental/shared/dto"
	"rental/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFromModel(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	modified := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: created, ModifiedAt: modified, CreatedBy: "admin", ModifiedBy: "owner"})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "admin", metadata.CreatedBy)
	assert.Equal(t, "owner", metadata.ModifiedBy)

	metadata.FromModel(model.NewMetadata("guest@example.com", time.Time{}))
	assert.Empty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
	assert.Equal(t, "guest@example.com", metadata.CreatedBy)
}

func TestTouch(t *testing.T) {
	at := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)

	fields := model.Touch(map[string]any{"status": "confirmed"}, "admin-1", at)
	assert.Equal(t, map[string]any{
		"status":                 "confirmed",
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: "admin-1",
	}, fields)

	assert.Len(t, model.Touch(nil, "admin-1", at), 2)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{name: "all params", query: "?page=2&limit=20&sort_by=check_in&sort_dir=asc", expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in", SortDir: dto.SortDirAsc}},
		{name: "defaults", query: "", defaultRequest: true, expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit}},
		{name: "no defaults", query: "", expected: dto.QueryParams{}},
		{name: "invalid numbers fall back", query: "?page=-1&limit=abc", defaultRequest: true, expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit}},
		{name: "unknown direction ignored", query: "?sort_dir=sideways", expected: dto.QueryParams{}},
		{name: "limit capped", query: "?limit=5000", expected: dto.QueryParams{Limit: dto.MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/reservations"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParamsOffset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 3}.Offset())
}

func TestFilterWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		where    string
		argName  string
		argValue any
	}{
		{name: "eq", filter: dto.Filter{Field: "apartment_id", Value: "a-1", Operator: dto.FilterOperatorEq}, where: "apartment_id = :apartment_id", argName: "apartment_id", argValue: "a-1"},
		{name: "not eq with table", filter: dto.Filter{Field: "status", Value: "cancelled", Operator: dto.FilterOperatorNotEq, Table: "reservations"}, where: "reservations.status != :status", argName: "status", argValue: "cancelled"},
		{name: "less with arg name", filter: dto.Filter{ArgName: "candidate_check_out", Field: "check_in", Value: "2025-06-15", Operator: dto.FilterOperatorLess}, where: "check_in < :candidate_check_out", argName: "candidate_check_out", argValue: "2025-06-15"},
		{name: "greater", filter: dto.Filter{Field: "check_out", Value: "2025-06-10", Operator: dto.FilterOperatorGreater}, where: "check_out > :check_out", argName: "check_out", argValue: "2025-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.argValue, args[tt.argName])
		})
	}
}

func TestFilterGroupWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "apartment_id", Value: "a-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "s1", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "s2", Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(apartment_id = :apartment_id AND (status = :s1 OR status = :s2))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}

func TestFilterIn(t *testing.T) {
	filter := dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn, Table: "reservations"}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "reservations.status IN (:status_0, :status_1) ", where)
	assert.Equal(t, map[string]any{"status_0": "pending", "status_1": "confirmed"}, args)

	empty := dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn}
	where, args = empty.GetWhereClause()

	assert.Equal(t, "FALSE", where)
	assert.Empty(t, args)
}

func TestFilterGroupSkipsUnknownOperators(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "apartment_id", Value: "a-1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "x", Operator: "between"},
			"not a filter",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(apartment_id = :apartment_id)", where)
	assert.Len(t, args, 1)
}
