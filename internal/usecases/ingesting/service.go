package ingesting

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// ErrLoadInProgress is returned when a reload is requested while another
// load is still running.
var ErrLoadInProgress = errors.New("dataset load already in progress")

// CacheInvalidator is notified after a completed reload so derived
// projections stop serving pre-reload values.
type CacheInvalidator interface {
	Invalidate()
}

// LoadStatus describes the most recent dataset load.
type LoadStatus struct {
	Loading      bool       `json:"loading"`
	LastRunID    string     `json:"lastRunId,omitempty"`
	LastLoadedAt *time.Time `json:"lastLoadedAt,omitempty"`
	LastCount    int64      `json:"lastCount"`
	LastErrors   int64      `json:"lastErrors"`
}

// Loader ingests the retail sales CSV into the record store in atomic
// batches.
type Loader interface {
	LoadOnStartup(ctx context.Context) (int64, error)
	Reload(ctx context.Context) (int64, error)
	Status() LoadStatus
}

type Service struct {
	salesRepo repository.SalesRepository
	cfg       *config.Config
	caches    []CacheInvalidator

	mu     sync.Mutex
	status LoadStatus
}

func NewService(salesRepo repository.SalesRepository, cfg *config.Config) *Service {
	return &Service{
		salesRepo: salesRepo,
		cfg:       cfg,
	}
}

// WithCacheInvalidation registers caches to drop after each reload.
func (s *Service) WithCacheInvalidation(caches ...CacheInvalidator) *Service {
	s.caches = append(s.caches, caches...)
	return s
}

// LoadOnStartup fills an empty store from the configured dataset source.
// A store that already holds records is left untouched.
func (s *Service) LoadOnStartup(ctx context.Context) (int64, error) {
	existing, err := s.salesRepo.RecordCount(ctx)
	if err != nil {
		return 0, err
	}

	if existing > 0 {
		log.ForContext(ctx).WithField("record_count", existing).Info("ingest: store already populated, skipping startup load")
		return existing, nil
	}

	return s.load(ctx, false)
}

// Reload clears the store and ingests the dataset from scratch. Completed
// batches stay committed if a later batch fails.
func (s *Service) Reload(ctx context.Context) (int64, error) {
	return s.load(ctx, true)
}

func (s *Service) Status() LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Service) load(ctx context.Context, clear bool) (int64, error) {
	s.mu.Lock()
	if s.status.Loading {
		s.mu.Unlock()
		return 0, ErrLoadInProgress
	}
	s.status.Loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.status.Loading = false
		s.mu.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		return 0, errors.Wrap(err, "generating load run id")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"source": s.cfg.Dataset.Source,
	})
	logger.Info("ingest: starting dataset load")

	if clear {
		if err := s.salesRepo.Clear(ctx); err != nil {
			return 0, err
		}
	}

	reader, err := s.openDataset()
	if err != nil {
		return 0, errors.Wrap(err, "opening dataset source")
	}
	defer reader.Close()

	startTime := time.Now()
	total, rowErrors, err := s.ingest(ctx, reader)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	s.mu.Lock()
	s.status.LastRunID = runID
	s.status.LastLoadedAt = &now
	s.status.LastCount = total
	s.status.LastErrors = rowErrors
	s.mu.Unlock()

	for _, cache := range s.caches {
		cache.Invalidate()
	}

	logger.WithFields(log.Fields{
		"records":    total,
		"row_errors": rowErrors,
		"duration":   time.Since(startTime).String(),
	}).Info("ingest: dataset load finished")

	return total, nil
}

// ingest streams the CSV, normalizes each row and flushes full batches to
// the store. Rows that fail to normalize are counted and skipped, never
// inserted half-formed.
func (s *Service) ingest(ctx context.Context, r io.Reader) (int64, int64, error) {
	batchSize := s.cfg.Dataset.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}

	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return 0, 0, errors.Wrap(err, "reading dataset header")
	}
	columns := headerIndex(header)

	var (
		batch     = make([]*domain.SalesRecord, 0, batchSize)
		total     int64
		rowErrors int64
	)

	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors++
			continue
		}

		record, err := normalizeRow(columns, row)
		if err != nil {
			rowErrors++
			continue
		}

		batch = append(batch, record)
		if len(batch) >= batchSize {
			if err := s.salesRepo.InsertBatch(ctx, batch); err != nil {
				return total, rowErrors, err
			}
			total += int64(len(batch))
			batch = batch[:0]

			if total%10000 == 0 {
				log.ForContext(ctx).WithField("records", total).Debug("ingest: progress")
			}
		}
	}

	if len(batch) > 0 {
		if err := s.salesRepo.InsertBatch(ctx, batch); err != nil {
			return total, rowErrors, err
		}
		total += int64(len(batch))
	}

	return total, rowErrors, nil
}

func (s *Service) openDataset() (io.ReadCloser, error) {
	source := s.cfg.Dataset.Source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return utils.FetchURL(source)
	}
	return os.Open(source)
}
