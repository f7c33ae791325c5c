package controllers_fx

import (
	"go.uber.org/fx"

	"travelend/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewInquiryController),
	fx.Provide(controllers.NewContentController))
