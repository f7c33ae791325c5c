package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelend/internal/models/request_models"
	"travelend/internal/services"
	"travelend/pkg/utils"
)

type InquiryController struct {
	inquiryService services.InquiryServiceInterface
}

func NewInquiryController(inquiryService services.InquiryServiceInterface) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
	}
}

// BuildPlannerInquiry godoc
// @Summary Compose the planner inquiry message and WhatsApp handoff link
// @Description Serializes the session and its fresh estimate into the outbound message. Works on partially filled sessions too (live preview).
// @Tags Inquiry
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.InquiryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planner/sessions/{sessionId}/inquiry [post]
func (i *InquiryController) BuildPlannerInquiry(c *gin.Context) {
	inquiry, err := i.inquiryService.BuildPlannerInquiry(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, inquiry, "Inquiry composed")
}

// BuildCollegeTripInquiry godoc
// @Summary Compose a college trip / industrial visit inquiry
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body request_models.CollegeTripInquiryRequest true "College trip details"
// @Success 200 {object} response_models.InquiryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /inquiries/college-trip [post]
func (i *InquiryController) BuildCollegeTripInquiry(c *gin.Context) {
	var req request_models.CollegeTripInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name, mobile, institution and destination are required")
		return
	}

	utils.RespondSuccess(c, i.inquiryService.BuildCollegeTripInquiry(req), "Inquiry composed")
}

// BuildTaxiTariffInquiry godoc
// @Summary Compose a taxi tariff inquiry
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body request_models.TaxiTariffInquiryRequest true "Taxi inquiry details"
// @Success 200 {object} response_models.InquiryResponse
// @Router /inquiries/taxi-tariff [post]
func (i *InquiryController) BuildTaxiTariffInquiry(c *gin.Context) {
	var req request_models.TaxiTariffInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid inquiry payload")
		return
	}

	utils.RespondSuccess(c, i.inquiryService.BuildTaxiTariffInquiry(req), "Inquiry composed")
}
