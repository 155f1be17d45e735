package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

type statisticsResponse struct {
	Success bool               `json:"success"`
	Data    *domain.Statistics `json:"data"`
}

// GetStatistics serves the whole-store aggregates.
func GetStatistics(service faceting.Faceter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats, err := service.GetStatistics(r.Context())
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statisticsResponse{Success: true, Data: stats}); err != nil {
			logger.WithError(err).Error("statistics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
