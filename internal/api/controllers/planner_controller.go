package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelend/internal/models/request_models"
	"travelend/internal/services"
	"travelend/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// CreateSession godoc
// @Summary Start a planning session
// @Description Create an empty planning session for a trip category
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest true "Trip category"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/sessions [post]
func (p *PlannerController) CreateSession(c *gin.Context) {
	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "trip_category is required")
		return
	}

	session, err := p.plannerService.CreateSession(req.TripCategory)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Planning session created")
}

// GetSession godoc
// @Summary Get a planning session with its current estimate
// @Tags Planner
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planner/sessions/{sessionId} [get]
func (p *PlannerController) GetSession(c *gin.Context) {
	session, err := p.plannerService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Planning session fetched")
}

// DeleteSession godoc
// @Summary Discard a planning session
// @Tags Planner
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /planner/sessions/{sessionId} [delete]
func (p *PlannerController) DeleteSession(c *gin.Context) {
	p.plannerService.DeleteSession(c.Param("sessionId"))
	utils.RespondSuccess(c, nil, "Planning session discarded")
}

// ToggleDestination godoc
// @Summary Toggle a catalog destination in the selection
// @Description Adds the destination if absent, removes it if present. Set semantics: toggling twice is a no-op.
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ToggleDestinationRequest true "Destination ID"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planner/sessions/{sessionId}/toggle-destination [post]
func (p *PlannerController) ToggleDestination(c *gin.Context) {
	var req request_models.ToggleDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination_id is required")
		return
	}

	session, err := p.plannerService.ToggleDestination(c.Param("sessionId"), req.DestinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Destination selection updated")
}

// AddCustomDestination godoc
// @Summary Add a free-text destination
// @Description Custom destinations carry no catalog price; they are listed in the inquiry as price-on-request.
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.CustomDestinationRequest true "Destination name"
// @Success 200 {object} response_models.SessionResponse
// @Router /planner/sessions/{sessionId}/custom-destinations [post]
func (p *PlannerController) AddCustomDestination(c *gin.Context) {
	var req request_models.CustomDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	session, err := p.plannerService.AddCustomDestination(c.Param("sessionId"), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Custom destination added")
}

// RemoveCustomDestination godoc
// @Summary Remove a free-text destination
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.CustomDestinationRequest true "Destination name"
// @Success 200 {object} response_models.SessionResponse
// @Router /planner/sessions/{sessionId}/remove-custom-destination [post]
func (p *PlannerController) RemoveCustomDestination(c *gin.Context) {
	var req request_models.CustomDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	session, err := p.plannerService.RemoveCustomDestination(c.Param("sessionId"), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Custom destination removed")
}

// ToggleAddOn godoc
// @Summary Toggle an add-on service in the selection
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ToggleAddOnRequest true "Add-on ID"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/sessions/{sessionId}/toggle-add-on [post]
func (p *PlannerController) ToggleAddOn(c *gin.Context) {
	var req request_models.ToggleAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "add_on_id is required")
		return
	}

	session, err := p.plannerService.ToggleAddOn(c.Param("sessionId"), req.AddOnID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Add-on selection updated")
}

// IncrementCounter godoc
// @Summary Increment a session counter
// @Description Counter is one of days, nights, persons, rooms
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.CounterRequest true "Counter name"
// @Success 200 {object} response_models.SessionResponse
// @Router /planner/sessions/{sessionId}/increment-counter [post]
func (p *PlannerController) IncrementCounter(c *gin.Context) {
	var req request_models.CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "counter is required")
		return
	}

	session, err := p.plannerService.IncrementCounter(c.Param("sessionId"), req.Counter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Counter updated")
}

// DecrementCounter godoc
// @Summary Decrement a session counter
// @Description Decrements clamp at the floor (days/persons/rooms at 1, nights at 0) instead of erroring
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.CounterRequest true "Counter name"
// @Success 200 {object} response_models.SessionResponse
// @Router /planner/sessions/{sessionId}/decrement-counter [post]
func (p *PlannerController) DecrementCounter(c *gin.Context) {
	var req request_models.CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "counter is required")
		return
	}

	session, err := p.plannerService.DecrementCounter(c.Param("sessionId"), req.Counter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Counter updated")
}

// UpdatePreferences godoc
// @Summary Update origin, pickup time or accommodation tier
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.PreferencesRequest true "Preferences (all fields optional)"
// @Success 200 {object} response_models.SessionResponse
// @Router /planner/sessions/{sessionId}/preferences [post]
func (p *PlannerController) UpdatePreferences(c *gin.Context) {
	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid preferences payload")
		return
	}

	session, err := p.plannerService.UpdatePreferences(c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Preferences updated")
}

// SwitchCategory godoc
// @Summary Switch the session's trip category
// @Description Clears both catalog and custom destination selections; counters and preferences survive
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SwitchCategoryRequest true "New trip category"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/sessions/{sessionId}/switch-category [post]
func (p *PlannerController) SwitchCategory(c *gin.Context) {
	var req request_models.SwitchCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "trip_category is required")
		return
	}

	session, err := p.plannerService.SwitchCategory(c.Param("sessionId"), req.TripCategory)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Trip category switched")
}

// GetEstimate godoc
// @Summary Get the current estimate for a session
// @Tags Planner
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planner/sessions/{sessionId}/estimate [get]
func (p *PlannerController) GetEstimate(c *gin.Context) {
	session, err := p.plannerService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session.Estimate, "Estimate computed")
}
