package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/usecases/browsing"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-sales-api/pkg/middleware"
)

func HealthcheckRoutes(salesRepo repository.SalesRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: Healthcheck(salesRepo),
		},
	}
}

func SalesRoutes(
	browser browsing.Browser,
	faceter faceting.Faceter,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSales(browser),
		},
		{
			Path:    "/v1/sales/filter-options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(faceter),
		},
		{
			Path:    "/v1/sales/stats",
			Method:  http.MethodGet,
			Handler: GetStatistics(faceter),
		},
	}
}

// DatasetRoutes are administrative and require a bearer token.
func DatasetRoutes(loader ingesting.Loader, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(loader),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireToken(cfg)},
		},
		{
			Path:        "/v1/dataset/status",
			Method:      http.MethodGet,
			Handler:     DatasetStatus(loader),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireToken(cfg)},
		},
	}
}
