package faceting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func expectFilterOptionQueries(mockRepo *mocks.MockSalesRepository, times int) {
	mockRepo.EXPECT().DistinctValues(gomock.Any(), "customerRegion").Return([]string{"North", "South"}, nil).Times(times)
	mockRepo.EXPECT().DistinctValues(gomock.Any(), "gender").Return([]string{"Female", "Male"}, nil).Times(times)
	mockRepo.EXPECT().DistinctValues(gomock.Any(), "productCategory").Return([]string{"Electronics"}, nil).Times(times)
	mockRepo.EXPECT().DistinctValues(gomock.Any(), "paymentMethod").Return([]string{"Cash", "Pix"}, nil).Times(times)
	mockRepo.EXPECT().TagVocabulary(gomock.Any()).Return([]string{"premium", "sale"}, nil).Times(times)
	mockRepo.EXPECT().AgeRange(gomock.Any()).Return(&domain.AgeRange{Min: 18, Max: 70}, nil).Times(times)
	mockRepo.EXPECT().DateRange(gomock.Any()).Return(&domain.DateRange{}, nil).Times(times)
}

func TestGetFilterOptions_ServesFromCacheWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo, time.Minute).(*Service)

	expectFilterOptionQueries(mockRepo, 1)

	first, err := service.GetFilterOptions(context.Background())
	require.NoError(t, err)

	second, err := service.GetFilterOptions(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"North", "South"}, first.CustomerRegions)
	assert.Equal(t, domain.AgeRange{Min: 18, Max: 70}, first.AgeRange)
}

func TestGetFilterOptions_RecomputesAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo, time.Minute).(*Service)

	current := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return current }

	expectFilterOptionQueries(mockRepo, 2)

	_, err := service.GetFilterOptions(context.Background())
	require.NoError(t, err)

	// Within the TTL: served from cache.
	current = current.Add(30 * time.Second)
	_, err = service.GetFilterOptions(context.Background())
	require.NoError(t, err)

	// Past the TTL: recomputed.
	current = current.Add(time.Minute)
	_, err = service.GetFilterOptions(context.Background())
	require.NoError(t, err)
}

func TestGetFilterOptions_PropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo, time.Minute)

	mockRepo.EXPECT().
		DistinctValues(gomock.Any(), "customerRegion").
		Return(nil, errors.New("connection refused"))

	options, err := service.GetFilterOptions(context.Background())
	require.Error(t, err)
	assert.Nil(t, options)
}

func TestGetStatistics_RoundsMonetaryValues(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo, time.Minute)

	mockRepo.EXPECT().
		Statistics(gomock.Any()).
		Return(&domain.Statistics{
			TotalTransactions: 100,
			TotalRevenue:      12345.6789,
			AverageOrderValue: 123.456789,
			TotalQuantitySold: 250,
			UniqueCustomers:   80,
			UniqueProducts:    40,
		}, nil)

	stats, err := service.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12345.68, stats.TotalRevenue)
	assert.Equal(t, 123.46, stats.AverageOrderValue)
	assert.Equal(t, int64(100), stats.TotalTransactions)
}

// An empty store yields zeroed statistics, not an error: the aggregate query
// coalesces its sums and averages.
func TestGetStatistics_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo, time.Minute)

	mockRepo.EXPECT().
		Statistics(gomock.Any()).
		Return(&domain.Statistics{}, nil)

	stats, err := service.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalTransactions)
	assert.Equal(t, float64(0), stats.TotalRevenue)
}

func TestInvalidate_ForcesRecompute(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo, time.Hour).(*Service)

	expectFilterOptionQueries(mockRepo, 2)
	mockRepo.EXPECT().Statistics(gomock.Any()).Return(&domain.Statistics{}, nil).Times(2)

	_, err := service.GetFilterOptions(context.Background())
	require.NoError(t, err)
	_, err = service.GetStatistics(context.Background())
	require.NoError(t, err)

	service.Invalidate()

	_, err = service.GetFilterOptions(context.Background())
	require.NoError(t, err)
	_, err = service.GetStatistics(context.Background())
	require.NoError(t, err)
}
