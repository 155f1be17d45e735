package browsing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetSalesData(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	records := []*domain.SalesRecord{
		{ID: 1, CustomerName: "Maria Souza"},
		{ID: 2, CustomerName: "João Silva"},
	}

	req := domain.NewSalesQueryRequest()
	req.Search = "  silva  "

	mockRepo.EXPECT().
		QueryPage(gomock.Any(), req).
		Return(records, nil)
	mockRepo.EXPECT().
		CountMatches(gomock.Any(), req).
		Return(int64(42), nil)

	result, err := service.GetSalesData(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, records, result.Data)
	assert.Equal(t, int64(42), result.Pagination.TotalRecords)
	assert.Equal(t, int64(5), result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNextPage)
	assert.False(t, result.Pagination.HasPreviousPage)

	require.NotNil(t, result.Search)
	assert.Equal(t, "silva", *result.Search)
	assert.Equal(t, domain.SortByDate, result.Sort.SortBy)
	assert.Equal(t, domain.SortDesc, result.Sort.SortOrder)
}

func TestGetSalesData_SearchOmittedWhenBlank(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	req := domain.NewSalesQueryRequest()

	mockRepo.EXPECT().QueryPage(gomock.Any(), req).Return([]*domain.SalesRecord{}, nil)
	mockRepo.EXPECT().CountMatches(gomock.Any(), req).Return(int64(0), nil)

	result, err := service.GetSalesData(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, result.Search)
}

// A page past the end of the matched set is an empty page with truthful
// metadata, not an error.
func TestGetSalesData_PagePastEnd(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	req := domain.NewSalesQueryRequest()
	req.Page = 5
	req.PageSize = 10

	mockRepo.EXPECT().QueryPage(gomock.Any(), req).Return([]*domain.SalesRecord{}, nil)
	mockRepo.EXPECT().CountMatches(gomock.Any(), req).Return(int64(3), nil)

	result, err := service.GetSalesData(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, result.Data)
	assert.Equal(t, int64(3), result.Pagination.TotalRecords)
	assert.Equal(t, int64(1), result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNextPage)
	assert.True(t, result.Pagination.HasPreviousPage)
}

func TestGetSalesData_FailsWhenEitherQueryFails(t *testing.T) {
	tests := []struct {
		name     string
		pageErr  error
		countErr error
	}{
		{
			name:    "page query fails",
			pageErr: errors.New("connection reset"),
		},
		{
			name:     "count query fails",
			countErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := mocks.NewMockSalesRepository(ctrl)
			service := NewService(mockRepo)

			req := domain.NewSalesQueryRequest()

			mockRepo.EXPECT().
				QueryPage(gomock.Any(), req).
				Return([]*domain.SalesRecord{}, tt.pageErr)
			mockRepo.EXPECT().
				CountMatches(gomock.Any(), req).
				Return(int64(0), tt.countErr)

			result, err := service.GetSalesData(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		totalRecords int64
		want         domain.Pagination
	}{
		{
			name:         "first page of many",
			page:         1,
			pageSize:     10,
			totalRecords: 95,
			want: domain.Pagination{
				CurrentPage:     1,
				PageSize:        10,
				TotalRecords:    95,
				TotalPages:      10,
				HasNextPage:     true,
				HasPreviousPage: false,
			},
		},
		{
			name:         "middle page",
			page:         5,
			pageSize:     10,
			totalRecords: 95,
			want: domain.Pagination{
				CurrentPage:     5,
				PageSize:        10,
				TotalRecords:    95,
				TotalPages:      10,
				HasNextPage:     true,
				HasPreviousPage: true,
			},
		},
		{
			name:         "last partial page",
			page:         10,
			pageSize:     10,
			totalRecords: 95,
			want: domain.Pagination{
				CurrentPage:     10,
				PageSize:        10,
				TotalRecords:    95,
				TotalPages:      10,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
		{
			name:         "empty store",
			page:         1,
			pageSize:     10,
			totalRecords: 0,
			want: domain.Pagination{
				CurrentPage:     1,
				PageSize:        10,
				TotalRecords:    0,
				TotalPages:      0,
				HasNextPage:     false,
				HasPreviousPage: false,
			},
		},
		{
			name:         "exact multiple of page size",
			page:         2,
			pageSize:     50,
			totalRecords: 100,
			want: domain.Pagination{
				CurrentPage:     2,
				PageSize:        50,
				TotalRecords:    100,
				TotalPages:      2,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPagination(tt.page, tt.pageSize, tt.totalRecords)
			assert.Equal(t, tt.want, got)
		})
	}
}
