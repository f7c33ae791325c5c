package request_models

type CreateSessionRequest struct {
	TripCategory string `json:"trip_category" binding:"required"`
}

type ToggleDestinationRequest struct {
	DestinationID string `json:"destination_id" binding:"required"`
}

type CustomDestinationRequest struct {
	Name string `json:"name" binding:"required"`
}

type ToggleAddOnRequest struct {
	AddOnID string `json:"add_on_id" binding:"required"`
}

// Counter is one of "days", "nights", "persons", "rooms".
type CounterRequest struct {
	Counter string `json:"counter" binding:"required"`
}

// Pointer fields so the handler can tell "absent" from "set to empty".
type PreferencesRequest struct {
	Origin            *string `json:"origin"`
	PickupTime        *string `json:"pickup_time"`
	AccommodationTier *string `json:"accommodation_tier"`
}

type SwitchCategoryRequest struct {
	TripCategory string `json:"trip_category" binding:"required"`
}
