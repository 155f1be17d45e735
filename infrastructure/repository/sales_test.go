package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

func TestBuildPageQuery_Defaults(t *testing.T) {
	req := domain.NewSalesQueryRequest()

	sql, args, err := buildPageQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM sales")
	assert.Contains(t, sql, "ORDER BY date DESC, id ASC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Contains(t, sql, "OFFSET 0")
	assert.Empty(t, args)
}

func TestBuildPageQuery_SortMapping(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    domain.SortField
		sortOrder domain.SortOrder
		orderBy   string
	}{
		{
			name:      "date descending by default",
			sortBy:    domain.SortByDate,
			sortOrder: domain.SortDesc,
			orderBy:   "ORDER BY date DESC, id ASC",
		},
		{
			name:      "quantity ascending",
			sortBy:    domain.SortByQuantity,
			sortOrder: domain.SortAsc,
			orderBy:   "ORDER BY quantity ASC, id ASC",
		},
		{
			name:      "customer name sorts case-insensitively",
			sortBy:    domain.SortByCustomerName,
			sortOrder: domain.SortAsc,
			orderBy:   "ORDER BY LOWER(customer_name) ASC, id ASC",
		},
		{
			name:      "final amount descending",
			sortBy:    domain.SortByFinalAmount,
			sortOrder: domain.SortDesc,
			orderBy:   "ORDER BY final_amount DESC, id ASC",
		},
		{
			name:      "age ascending",
			sortBy:    domain.SortByAge,
			sortOrder: domain.SortAsc,
			orderBy:   "ORDER BY age ASC, id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.NewSalesQueryRequest()
			req.SortBy = tt.sortBy
			req.SortOrder = tt.sortOrder

			sql, _, err := buildPageQuery(req)
			require.NoError(t, err)

			assert.Contains(t, sql, tt.orderBy)
		})
	}
}

func TestBuildPageQuery_UnsupportedSortField(t *testing.T) {
	req := domain.NewSalesQueryRequest()
	req.SortBy = domain.SortField("customer_name; DROP TABLE sales")

	_, _, err := buildPageQuery(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sort field")
}

func TestBuildPageQuery_OffsetMath(t *testing.T) {
	req := domain.NewSalesQueryRequest()
	req.Page = 5
	req.PageSize = 25

	sql, _, err := buildPageQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT 25")
	assert.Contains(t, sql, "OFFSET 100")
}

func TestBuildCountQuery_HasNoWindowOrSort(t *testing.T) {
	req := domain.NewSalesQueryRequest()
	req.Filters.Gender = []string{"Female"}

	sql, args, err := buildCountQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "SELECT COUNT(*) FROM sales")
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "OFFSET")
	assert.Equal(t, []interface{}{"Female"}, args)
}

// Page and count queries must agree on the matched set, so the rendered WHERE
// fragment and the bound parameters have to be identical.
func TestPageAndCountQueriesShareThePredicate(t *testing.T) {
	ageMin := 30
	dateFrom := "2023-06-01"

	req := domain.NewSalesQueryRequest()
	req.Search = "silva"
	req.Filters.CustomerRegion = []string{"North"}
	req.Filters.AgeMin = &ageMin
	req.Filters.DateFrom = &dateFrom

	pageSQL, pageArgs, err := buildPageQuery(req)
	require.NoError(t, err)

	countSQL, countArgs, err := buildCountQuery(req)
	require.NoError(t, err)

	assert.Equal(t, whereFragment(t, pageSQL), whereFragment(t, countSQL))
	assert.Equal(t, pageArgs, countArgs)
}

// whereFragment extracts the text between WHERE and the first trailing
// clause, if any.
func whereFragment(t *testing.T, sql string) string {
	t.Helper()

	_, after, found := strings.Cut(sql, " WHERE ")
	require.True(t, found, "query has no WHERE clause: %s", sql)

	if before, _, found := strings.Cut(after, " ORDER BY "); found {
		return before
	}
	return after
}
