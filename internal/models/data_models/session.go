package data_models

import "strings"

type AccommodationTier string

const (
	TierHomeStay  AccommodationTier = "home_stay"
	TierHotel     AccommodationTier = "hotel"
	TierThreeStar AccommodationTier = "three_star"
)

func ParseAccommodationTier(raw string) (AccommodationTier, bool) {
	switch AccommodationTier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierHomeStay:
		return TierHomeStay, true
	case TierHotel:
		return TierHotel, true
	case TierThreeStar:
		return TierThreeStar, true
	default:
		return "", false
	}
}

func (t AccommodationTier) Label() string {
	switch t {
	case TierHomeStay:
		return "Home Stay"
	case TierThreeStar:
		return "3-Star Hotel"
	default:
		return "Hotel"
	}
}

// PlanningSession is the mutable planner state. It lives only in memory and
// is discarded when the visitor walks away or completes the handoff.
type PlanningSession struct {
	ID                     string            `json:"id"`
	TripCategory           TripCategory      `json:"trip_category"`
	Origin                 string            `json:"origin"`
	SelectedDestinationIDs []string          `json:"selected_destination_ids"`
	CustomDestinationNames []string          `json:"custom_destination_names"`
	SelectedAddOnIDs       []string          `json:"selected_add_on_ids"`
	Days                   int               `json:"days"`
	Nights                 int               `json:"nights"`
	PersonCount            int               `json:"person_count"`
	RoomCount              int               `json:"room_count"`
	AccommodationTier      AccommodationTier `json:"accommodation_tier"`
	PickupTime             string            `json:"pickup_time,omitempty"`
}

// HasDestinationSelected reports whether id is in the selection. The slices
// carry set semantics; insertion order is kept for the outbound message.
func (s *PlanningSession) HasDestinationSelected(id string) bool {
	for _, selected := range s.SelectedDestinationIDs {
		if selected == id {
			return true
		}
	}
	return false
}

func (s *PlanningSession) HasAddOnSelected(id string) bool {
	for _, selected := range s.SelectedAddOnIDs {
		if selected == id {
			return true
		}
	}
	return false
}

// EstimateResult is derived from a session snapshot and never stored.
type EstimateResult struct {
	BaseTotal  int64 `json:"base_total"`
	AddOnTotal int64 `json:"add_on_total"`
	GrandTotal int64 `json:"grand_total"`
}
