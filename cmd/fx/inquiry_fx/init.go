package inquiry_fx

import (
	"go.uber.org/fx"

	"travelend/internal/config"
	"travelend/internal/repositories"
	"travelend/internal/services"
	mem "travelend/pkg/memcache"
)

var Module = fx.Provide(provideComposerConfig, provideInquiryService)

func provideComposerConfig(cfg *config.Config) services.ComposerConfig {
	return services.ComposerConfig{
		SiteName:        cfg.SiteName,
		HomeCity:        cfg.HomeCity,
		ContactPhone:    cfg.ContactPhone,
		WhatsAppBaseURL: cfg.WhatsAppBaseURL,
	}
}

func provideInquiryService(
	composerCfg services.ComposerConfig,
	store mem.SessionStore,
	catalogRepo repositories.CatalogRepository,
	estimates services.EstimateServiceInterface,
) services.InquiryServiceInterface {
	return services.NewInquiryService(composerCfg, store, catalogRepo, estimates)
}
