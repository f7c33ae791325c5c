package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelend/internal/models/request_models"
	"travelend/internal/services"
	"travelend/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetTestimonials godoc
// @Summary Get testimonials
// @Description Fetch testimonials from the content API, falling back to bundled reviews when the API is unreachable
// @Tags Content
// @Produce json
// @Success 200 {object} response_models.TestimonialsResponse
// @Router /content/testimonials [get]
func (ct *ContentController) GetTestimonials(c *gin.Context) {
	utils.RespondSuccess(c, ct.contentService.GetTestimonials(c.Request.Context()), "Testimonials fetched successfully")
}

// SubmitQuery godoc
// @Summary Submit a contact-form query
// @Description Forwards the query to the external content API
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.SubmitQueryRequest true "Contact query"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /content/queries [post]
func (ct *ContentController) SubmitQuery(c *gin.Context) {
	var req request_models.SubmitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name, email and message are required")
		return
	}

	if err := ct.contentService.SubmitQuery(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Query submitted successfully")
}
