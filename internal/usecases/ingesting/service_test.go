package ingesting

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const testCSVHeader = "Customer ID,Product ID,Customer Name,Final Amount,Date\n"

func newTestService(t *testing.T, mockRepo *mocks.MockSalesRepository, csv string, batchSize int) *Service {
	t.Helper()

	source := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(source, []byte(csv), 0o600))

	return NewService(mockRepo, &config.Config{
		Dataset: config.Dataset{
			Source:    source,
			BatchSize: batchSize,
		},
	})
}

func TestIngest_FlushesFullBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)

	csv := testCSVHeader +
		"C001,P001,Ana,10.00,2023-01-01\n" +
		"C002,P002,Bruno,20.00,2023-01-02\n" +
		"C003,P003,Carla,30.00,2023-01-03\n" +
		"C004,P004,Diego,40.00,2023-01-04\n" +
		"C005,P005,Elisa,50.00,2023-01-05\n"

	service := newTestService(t, mockRepo, csv, 2)

	var batchSizes []int
	mockRepo.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []*domain.SalesRecord) error {
			batchSizes = append(batchSizes, len(records))
			return nil
		}).
		Times(3)

	total, rowErrors, err := service.ingest(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	assert.Equal(t, int64(0), rowErrors)
	assert.Equal(t, []int{2, 2, 1}, batchSizes)
}

func TestIngest_SkipsRowsThatFailToNormalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)

	csv := testCSVHeader +
		"C001,P001,Ana,10.00,2023-01-01\n" +
		",P002,Bruno,20.00,2023-01-02\n" +
		"C003,,Carla,30.00,2023-01-03\n" +
		"C004,P004,Diego,40.00,2023-01-04\n"

	service := newTestService(t, mockRepo, csv, 100)

	mockRepo.EXPECT().
		InsertBatch(gomock.Any(), gomock.Len(2)).
		Return(nil)

	total, rowErrors, err := service.ingest(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(2), rowErrors)
}

func TestLoadOnStartup_SkipsWhenStoreIsPopulated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)

	service := newTestService(t, mockRepo, testCSVHeader, 100)

	mockRepo.EXPECT().RecordCount(gomock.Any()).Return(int64(5000), nil)

	count, err := service.LoadOnStartup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5000), count)
}

func TestLoadOnStartup_FillsEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)

	csv := testCSVHeader + "C001,P001,Ana,10.00,2023-01-01\n"
	service := newTestService(t, mockRepo, csv, 100)

	mockRepo.EXPECT().RecordCount(gomock.Any()).Return(int64(0), nil)
	mockRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Len(1)).Return(nil)

	count, err := service.LoadOnStartup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	status := service.Status()
	assert.False(t, status.Loading)
	assert.NotEmpty(t, status.LastRunID)
	assert.Equal(t, int64(1), status.LastCount)
	require.NotNil(t, status.LastLoadedAt)
}

func TestReload_ClearsBeforeIngesting(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)

	csv := testCSVHeader + "C001,P001,Ana,10.00,2023-01-01\n"
	service := newTestService(t, mockRepo, csv, 100)

	gomock.InOrder(
		mockRepo.EXPECT().Clear(gomock.Any()).Return(nil),
		mockRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Len(1)).Return(nil),
	)

	count, err := service.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReload_RejectsConcurrentLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)

	service := newTestService(t, mockRepo, testCSVHeader, 100)
	service.status.Loading = true

	_, err := service.Reload(context.Background())
	assert.ErrorIs(t, err, ErrLoadInProgress)
}

type invalidatorSpy struct {
	calls int
}

func (s *invalidatorSpy) Invalidate() { s.calls++ }

func TestReload_InvalidatesCachesAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalesRepository(ctrl)

	csv := testCSVHeader + "C001,P001,Ana,10.00,2023-01-01\n"
	spy := &invalidatorSpy{}

	service := newTestService(t, mockRepo, csv, 100).
		WithCacheInvalidation(spy)

	mockRepo.EXPECT().Clear(gomock.Any()).Return(nil)
	mockRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, spy.calls)
}
