package response_models

import "travelend/internal/models/data_models"

type EstimateResponse struct {
	BaseTotal      int64  `json:"base_total"`
	AddOnTotal     int64  `json:"add_on_total"`
	GrandTotal     int64  `json:"grand_total"`
	FormattedTotal string `json:"formatted_total"`
}

// SessionResponse is returned by every planner mutation so the client always
// renders from a freshly recomputed estimate.
type SessionResponse struct {
	Session  data_models.PlanningSession `json:"session"`
	Estimate EstimateResponse            `json:"estimate"`
}
