package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelend/internal/models/data_models"
	"travelend/internal/services"
	"travelend/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetDestinations godoc
// @Summary Get the destination catalog for a trip category
// @Description Fetch the ordered destination list for local, outstation or college trips
// @Tags Catalog
// @Produce json
// @Param category path string true "Trip category (local|outstation|college)"
// @Success 200 {object} response_models.DestinationCatalogResponse
// @Failure 400 {object} utils.APIResponse
// @Router /catalog/destinations/{category} [get]
func (ct *CatalogController) GetDestinations(c *gin.Context) {
	category, ok := data_models.ParseTripCategory(c.Param("category"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown trip category (use local, outstation or college)")
		return
	}

	catalog, err := ct.catalogService.ResolveDestinations(category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, catalog, "Destinations fetched successfully")
}

// GetAddOns godoc
// @Summary Get the add-on service catalog
// @Description Fetch optional add-on services (food, accommodation, tolls) with pricing rules
// @Tags Catalog
// @Produce json
// @Param category query string false "Trip category for future filtering" default(outstation)
// @Success 200 {array} response_models.AddOnResponse
// @Router /catalog/add-ons [get]
func (ct *CatalogController) GetAddOns(c *gin.Context) {
	category, ok := data_models.ParseTripCategory(c.DefaultQuery("category", string(data_models.CategoryOutstation)))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown trip category (use local, outstation or college)")
		return
	}

	utils.RespondSuccess(c, ct.catalogService.ResolveAddOns(category), "Add-ons fetched successfully")
}

// GetSuggestions godoc
// @Summary Autocomplete tourist places
// @Description Case-insensitive substring search over tourist spots, capped at 8 results. Empty query returns no results.
// @Tags Catalog
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} response_models.SuggestionResponse
// @Router /catalog/suggestions [get]
func (ct *CatalogController) GetSuggestions(c *gin.Context) {
	utils.RespondSuccess(c, ct.catalogService.SuggestPlaces(c.Query("q")), "Suggestions fetched successfully")
}

// ListPackages godoc
// @Summary List tour packages
// @Tags Catalog
// @Produce json
// @Success 200 {array} data_models.TourPackage
// @Router /catalog/packages [get]
func (ct *CatalogController) ListPackages(c *gin.Context) {
	utils.RespondSuccess(c, ct.catalogService.ListPackages(), "Packages fetched successfully")
}

// GetPackage godoc
// @Summary Get a tour package by id
// @Tags Catalog
// @Produce json
// @Param packageId path string true "Package ID"
// @Success 200 {object} data_models.TourPackage
// @Failure 404 {object} utils.APIResponse
// @Router /catalog/packages/{packageId} [get]
func (ct *CatalogController) GetPackage(c *gin.Context) {
	pkg, err := ct.catalogService.GetPackage(c.Param("packageId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package fetched successfully")
}

// GetTariff godoc
// @Summary Get the taxi tariff table and vehicle options
// @Tags Catalog
// @Produce json
// @Success 200 {object} data_models.TaxiTariff
// @Router /catalog/tariffs [get]
func (ct *CatalogController) GetTariff(c *gin.Context) {
	utils.RespondSuccess(c, ct.catalogService.GetTariff(), "Tariffs fetched successfully")
}
