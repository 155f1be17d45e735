package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

type filterOptionsResponse struct {
	Success bool                  `json:"success"`
	Data    *domain.FilterOptions `json:"data"`
}

// GetFilterOptions serves the facet lists the filter UI is built from.
func GetFilterOptions(service faceting.Faceter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(filterOptionsResponse{Success: true, Data: options}); err != nil {
			logger.WithError(err).Error("filter options: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
