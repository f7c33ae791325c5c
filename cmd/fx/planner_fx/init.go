package planner_fx

import (
	"time"

	"go.uber.org/fx"

	"travelend/internal/config"
	"travelend/internal/repositories"
	"travelend/internal/services"
	mem "travelend/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore, provideEstimateService, providePlannerService)

func provideSessionStore() mem.SessionStore {
	return mem.NewSessions()
}

func provideEstimateService(catalogRepo repositories.CatalogRepository) services.EstimateServiceInterface {
	return services.NewEstimateService(catalogRepo)
}

func providePlannerService(
	store mem.SessionStore,
	catalogRepo repositories.CatalogRepository,
	estimates services.EstimateServiceInterface,
	cfg *config.Config,
) services.PlannerServiceInterface {
	return services.NewPlannerService(
		store,
		catalogRepo,
		estimates,
		cfg.HomeCity,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
	)
}
