package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/browsing"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validSortFields = map[domain.SortField]bool{
	domain.SortByDate:         true,
	domain.SortByQuantity:     true,
	domain.SortByCustomerName: true,
	domain.SortByFinalAmount:  true,
	domain.SortByAge:          true,
}

type salesResponse struct {
	Success bool `json:"success"`
	*domain.SalesQueryResult
}

// GetSales answers the browse endpoint: search, filters, sort and
// pagination in one request.
func GetSales(service browsing.Browser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := parseSalesQuery(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("sales: invalid browse request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := service.GetSalesData(r.Context(), req)
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(salesResponse{Success: true, SalesQueryResult: result}); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseSalesQuery validates the raw query parameters and builds the request
// the query engine runs. Multi-value dimensions arrive comma-joined; blank
// entries are dropped so an empty parameter means "unconstrained", never
// "match nothing".
func parseSalesQuery(query url.Values) (*domain.SalesQueryRequest, error) {
	req := domain.NewSalesQueryRequest()
	req.Search = strings.TrimSpace(query.Get("search"))

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, errors.New("page must be a positive integer")
		}
		req.Page = page
	}

	if raw := query.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 || pageSize > domain.MaxPageSize {
			return nil, fmt.Errorf("page size must be between 1 and %d", domain.MaxPageSize)
		}
		req.PageSize = pageSize
	}

	if raw := query.Get("sortBy"); raw != "" {
		sortBy := domain.SortField(raw)
		if !validSortFields[sortBy] {
			return nil, fmt.Errorf("sort by must be one of: date, quantity, customerName, finalAmount, age")
		}
		req.SortBy = sortBy
	}

	if raw := query.Get("sortOrder"); raw != "" {
		switch domain.SortOrder(strings.ToLower(raw)) {
		case domain.SortAsc:
			req.SortOrder = domain.SortAsc
		case domain.SortDesc:
			req.SortOrder = domain.SortDesc
		default:
			return nil, errors.New(`sort order must be either "asc" or "desc"`)
		}
	}

	req.Filters.CustomerRegion = splitCSVParam(query.Get("customerRegion"))
	req.Filters.Gender = splitCSVParam(query.Get("gender"))
	req.Filters.ProductCategory = splitCSVParam(query.Get("productCategory"))
	req.Filters.Tags = splitCSVParam(query.Get("tags"))
	req.Filters.PaymentMethod = splitCSVParam(query.Get("paymentMethod"))

	if raw := query.Get("ageMin"); raw != "" {
		ageMin, err := strconv.Atoi(raw)
		if err != nil || ageMin < 0 {
			return nil, errors.New("age minimum must be a non-negative number")
		}
		req.Filters.AgeMin = &ageMin
	}

	if raw := query.Get("ageMax"); raw != "" {
		ageMax, err := strconv.Atoi(raw)
		if err != nil || ageMax < 0 {
			return nil, errors.New("age maximum must be a non-negative number")
		}
		req.Filters.AgeMax = &ageMax
	}

	if req.Filters.AgeMin != nil && req.Filters.AgeMax != nil && *req.Filters.AgeMin > *req.Filters.AgeMax {
		return nil, errors.New("age minimum cannot be greater than age maximum")
	}

	dateFrom, err := utils.ParseISODate(query.Get("dateFrom"))
	if err != nil {
		return nil, errors.New("invalid date format for dateFrom")
	}
	req.Filters.DateFrom = dateFrom

	dateTo, err := utils.ParseISODate(query.Get("dateTo"))
	if err != nil {
		return nil, errors.New("invalid date format for dateTo")
	}
	req.Filters.DateTo = dateTo

	if dateFrom != nil && dateTo != nil && *dateFrom > *dateTo {
		return nil, errors.New("date from cannot be after date to")
	}

	return req, nil
}

// splitCSVParam turns a comma-joined parameter into its non-empty values.
func splitCSVParam(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// writeQueryError maps store-layer failures onto the error envelope.
func writeQueryError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrStoreUnavailable):
		logger.WithError(err).Error("sales: store unavailable")
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, "sales store unavailable", nil)
	case errors.Is(err, repository.ErrNotInitialized):
		logger.WithError(err).Error("sales: store not initialized")
		apiErrors.WriteError(w, apiErrors.ErrStoreNotReady, "sales store not initialized", nil)
	default:
		logger.WithError(err).Error("sales: query failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
