package browsing

import (
	"context"
	"strings"
	"sync"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// Browser is the query engine: it answers a browse request with one page of
// records plus pagination metadata derived from the matching count.
type Browser interface {
	GetSalesData(ctx context.Context, req *domain.SalesQueryRequest) (*domain.SalesQueryResult, error)
}

type Service struct {
	salesRepo repository.SalesRepository
}

func NewService(salesRepo repository.SalesRepository) Browser {
	return &Service{
		salesRepo: salesRepo,
	}
}

// GetSalesData runs the page fetch and the count concurrently. Both queries
// share one predicate builder, so they always agree on the matched set; if
// either fails the whole operation fails, never a partial result.
func (s *Service) GetSalesData(ctx context.Context, req *domain.SalesQueryRequest) (*domain.SalesQueryResult, error) {
	var (
		records  []*domain.SalesRecord
		total    int64
		pageErr  error
		countErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		records, pageErr = s.salesRepo.QueryPage(ctx, req)
	}()

	go func() {
		defer wg.Done()
		total, countErr = s.salesRepo.CountMatches(ctx, req)
	}()

	wg.Wait()

	if pageErr != nil {
		return nil, pageErr
	}
	if countErr != nil {
		return nil, countErr
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"page":          req.Page,
		"page_size":     req.PageSize,
		"total_records": total,
		"returned":      len(records),
	}).Debug("sales: browse query executed")

	result := &domain.SalesQueryResult{
		Data:       records,
		Pagination: buildPagination(req.Page, req.PageSize, total),
		Filters:    req.Filters,
		Sort: domain.SortSpec{
			SortBy:    req.SortBy,
			SortOrder: req.SortOrder,
		},
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		result.Search = &search
	}

	return result, nil
}

// buildPagination computes the metadata block from the count query result.
func buildPagination(page, pageSize int, totalRecords int64) domain.Pagination {
	totalPages := int64(0)
	if pageSize > 0 {
		totalPages = (totalRecords + int64(pageSize) - 1) / int64(pageSize)
	}

	return domain.Pagination{
		CurrentPage:     page,
		PageSize:        pageSize,
		TotalRecords:    totalRecords,
		TotalPages:      totalPages,
		HasNextPage:     int64(page) < totalPages,
		HasPreviousPage: page > 1,
	}
}
