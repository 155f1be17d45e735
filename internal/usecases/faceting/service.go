package faceting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

const DefaultTTL = 5 * time.Minute

// Faceter serves the derived read-only projections over the sales store:
// filter option facets and whole-store statistics, each memoized for a fixed
// TTL because they scan the full table.
type Faceter interface {
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
	Invalidate()
}

type cachedOptions struct {
	value     *domain.FilterOptions
	expiresAt time.Time
}

type cachedStats struct {
	value     *domain.Statistics
	expiresAt time.Time
}

type Service struct {
	salesRepo repository.SalesRepository
	ttl       time.Duration

	mu      sync.Mutex
	options *cachedOptions
	stats   *cachedStats

	// now is swappable in tests
	now func() time.Time
}

func NewService(salesRepo repository.SalesRepository, ttl time.Duration) Faceter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		salesRepo: salesRepo,
		ttl:       ttl,
		now:       time.Now,
	}
}

// GetFilterOptions returns the facet lists for the filter UI. Cache misses
// recompute outside any lock: two concurrent misses may both hit the store,
// which only costs duplicated work, never correctness.
func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	s.mu.Lock()
	if c := s.options; c != nil && s.now().Before(c.expiresAt) {
		s.mu.Unlock()
		return c.value, nil
	}
	s.mu.Unlock()

	options, err := s.computeFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.options = &cachedOptions{value: options, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	log.ForContext(ctx).Debug("facets: filter options recomputed")
	return options, nil
}

func (s *Service) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	s.mu.Lock()
	if c := s.stats; c != nil && s.now().Before(c.expiresAt) {
		s.mu.Unlock()
		return c.value, nil
	}
	s.mu.Unlock()

	stats, err := s.salesRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	stats.TotalRevenue = utils.RoundWithTwoDecimalPlace(stats.TotalRevenue)
	stats.AverageOrderValue = utils.RoundWithTwoDecimalPlace(stats.AverageOrderValue)

	s.mu.Lock()
	s.stats = &cachedStats{value: stats, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	log.ForContext(ctx).Debug("facets: statistics recomputed")
	return stats, nil
}

// Invalidate drops both cached projections. The dataset loader calls this
// after a completed reload so the next read recomputes instead of serving
// pre-reload values for a whole TTL window.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.options = nil
	s.stats = nil
	s.mu.Unlock()
}

func (s *Service) computeFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	regions, err := s.salesRepo.DistinctValues(ctx, "customerRegion")
	if err != nil {
		return nil, err
	}

	genders, err := s.salesRepo.DistinctValues(ctx, "gender")
	if err != nil {
		return nil, err
	}

	categories, err := s.salesRepo.DistinctValues(ctx, "productCategory")
	if err != nil {
		return nil, err
	}

	payments, err := s.salesRepo.DistinctValues(ctx, "paymentMethod")
	if err != nil {
		return nil, err
	}

	tags, err := s.salesRepo.TagVocabulary(ctx)
	if err != nil {
		return nil, err
	}

	ageRange, err := s.salesRepo.AgeRange(ctx)
	if err != nil {
		return nil, err
	}

	dateRange, err := s.salesRepo.DateRange(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FilterOptions{
		CustomerRegions:   regions,
		Genders:           genders,
		ProductCategories: categories,
		Tags:              tags,
		PaymentMethods:    payments,
		AgeRange:          *ageRange,
		DateRange:         *dateRange,
	}, nil
}
