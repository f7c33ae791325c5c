package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"travelend/cmd/fx/catalog_fx"
	"travelend/cmd/fx/config_fx"
	"travelend/cmd/fx/content_fx"
	"travelend/cmd/fx/controllers_fx"
	"travelend/cmd/fx/inquiry_fx"
	"travelend/cmd/fx/planner_fx"
	"travelend/internal/api/controllers"
	"travelend/internal/config"
	"travelend/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		catalog_fx.Module,
		planner_fx.Module,
		inquiry_fx.Module,
		content_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", cfg.ServerPort)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	catalogController *controllers.CatalogController,
	plannerController *controllers.PlannerController,
	inquiryController *controllers.InquiryController,
	contentController *controllers.ContentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, catalogController, plannerController, inquiryController, contentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	catalogController *controllers.CatalogController,
	plannerController *controllers.PlannerController,
	inquiryController *controllers.InquiryController,
	contentController *controllers.ContentController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("/destinations/:category", catalogController.GetDestinations)
	catalogGroup.GET("/add-ons", catalogController.GetAddOns)
	catalogGroup.GET("/suggestions", catalogController.GetSuggestions)
	catalogGroup.GET("/packages", catalogController.ListPackages)
	catalogGroup.GET("/packages/:packageId", catalogController.GetPackage)
	catalogGroup.GET("/tariffs", catalogController.GetTariff)

	plannerGroup := r.Group("/planner/sessions")
	plannerGroup.POST("", plannerController.CreateSession)
	plannerGroup.GET("/:sessionId", plannerController.GetSession)
	plannerGroup.DELETE("/:sessionId", plannerController.DeleteSession)
	plannerGroup.POST("/:sessionId/toggle-destination", plannerController.ToggleDestination)
	plannerGroup.POST("/:sessionId/custom-destinations", plannerController.AddCustomDestination)
	plannerGroup.POST("/:sessionId/remove-custom-destination", plannerController.RemoveCustomDestination)
	plannerGroup.POST("/:sessionId/toggle-add-on", plannerController.ToggleAddOn)
	plannerGroup.POST("/:sessionId/increment-counter", plannerController.IncrementCounter)
	plannerGroup.POST("/:sessionId/decrement-counter", plannerController.DecrementCounter)
	plannerGroup.POST("/:sessionId/preferences", plannerController.UpdatePreferences)
	plannerGroup.POST("/:sessionId/switch-category", plannerController.SwitchCategory)
	plannerGroup.GET("/:sessionId/estimate", plannerController.GetEstimate)
	plannerGroup.POST("/:sessionId/inquiry", inquiryController.BuildPlannerInquiry)

	inquiryGroup := r.Group("/inquiries")
	inquiryGroup.POST("/college-trip", inquiryController.BuildCollegeTripInquiry)
	inquiryGroup.POST("/taxi-tariff", inquiryController.BuildTaxiTariffInquiry)

	contentGroup := r.Group("/content")
	contentGroup.GET("/testimonials", contentController.GetTestimonials)
	contentGroup.POST("/queries", contentController.SubmitQuery)
}
