package content_fx

import (
	"go.uber.org/fx"

	"travelend/internal/config"
	"travelend/internal/repositories"
	"travelend/internal/services"
)

var Module = fx.Provide(provideContentRepo, provideContentService)

func provideContentRepo(cfg *config.Config) repositories.ContentRepository {
	return repositories.NewContentRepository(cfg.ContentAPIBaseURL)
}

func provideContentService(
	contentRepo repositories.ContentRepository,
	catalogRepo repositories.CatalogRepository,
	cfg *config.Config,
) services.ContentServiceInterface {
	return services.NewContentService(contentRepo, catalogRepo, cfg.ContentAPIStoreID)
}
