package catalog_fx

import (
	"go.uber.org/fx"

	"travelend/internal/infra"
	"travelend/internal/repositories"
	"travelend/internal/services"
)

var Module = fx.Provide(infra.LoadFixtures, provideCatalogRepo, provideCatalogService)

func provideCatalogRepo(fixtures *infra.FixtureSet) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(fixtures)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}
