package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

type healthcheckResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Database  healthcheckDBInfo `json:"database"`
}

type healthcheckDBInfo struct {
	Connected   bool  `json:"connected"`
	RecordCount int64 `json:"recordCount"`
}

// Healthcheck reports liveness plus whether the store is reachable and how
// many records it holds.
func Healthcheck(salesRepo repository.SalesRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		}

		count, err := salesRepo.RecordCount(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: store unreachable")
			response.Status = "degraded"
		} else {
			response.Database.Connected = true
			response.Database.RecordCount = count
		}

		w.Header().Set("Content-Type", "application/json")
		if response.Status != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
