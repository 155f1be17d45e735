package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// reloadTimeout bounds a background dataset reload kicked off over HTTP.
const reloadTimeout = 30 * time.Minute

type reloadResponse struct {
	Success bool   `json:"success"`
	RunID   string `json:"runId"`
	Message string `json:"message"`
}

type statusResponse struct {
	Success bool                 `json:"success"`
	Data    ingesting.LoadStatus `json:"data"`
}

// ReloadDataset kicks off a full reload in the background and answers 202
// with a run id the caller can correlate in the logs.
func ReloadDataset(service ingesting.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service.Status().Loading {
			apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, "a dataset reload is already running", nil)
			return
		}

		runID, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Error("dataset: failed to generate run id")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		correlationID := log.GetCorrelationID(r.Context())

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
			defer cancel()
			ctx = context.WithValue(ctx, log.CorrelationIDKey, correlationID)

			count, err := service.Reload(ctx)
			if err != nil {
				if errors.Is(err, ingesting.ErrLoadInProgress) {
					log.ForContext(ctx).WithField("run_id", runID).Info("dataset: reload skipped, another load is running")
					return
				}
				log.ForContext(ctx).WithError(err).WithField("run_id", runID).Error("dataset: reload failed")
				return
			}

			log.ForContext(ctx).WithFields(log.Fields{
				"run_id":  runID,
				"records": count,
			}).Info("dataset: reload finished")
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(reloadResponse{
			Success: true,
			RunID:   runID,
			Message: "dataset reload started",
		}); err != nil {
			logger.WithError(err).Error("dataset: failed to encode response")
		}
	})
}

// DatasetStatus reports the most recent load.
func DatasetStatus(service ingesting.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statusResponse{Success: true, Data: service.Status()}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dataset: failed to encode status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
