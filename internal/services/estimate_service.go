package services

import (
	"travelend/internal/models/data_models"
	"travelend/internal/repositories"
)

type EstimateServiceInterface interface {
	ComputeEstimate(session *data_models.PlanningSession) (data_models.EstimateResult, error)
}

type EstimateService struct {
	catalogRepo repositories.CatalogRepository
}

func NewEstimateService(catalogRepo repositories.CatalogRepository) EstimateServiceInterface {
	return &EstimateService{
		catalogRepo: catalogRepo,
	}
}

// ComputeEstimate derives the price breakdown from a session snapshot. It is
// a pure derivation with no side effects, cheap enough to rerun on every
// mutation.
//
// Selected ids that are missing from the catalog are skipped, not rejected:
// the UI selection and the catalog can diverge for a moment around a
// category switch, and that divergence is not an error.
func (e *EstimateService) ComputeEstimate(session *data_models.PlanningSession) (data_models.EstimateResult, error) {
	destinations, err := e.catalogRepo.GetDestinationsByCategory(session.TripCategory)
	if err != nil {
		return data_models.EstimateResult{}, err
	}

	priceByID := make(map[string]int64, len(destinations))
	for _, destination := range destinations {
		priceByID[destination.ID] = destination.BasePrice
	}

	var baseTotal int64
	for _, id := range session.SelectedDestinationIDs {
		// Zero-price entries contribute 0: "quote on request", not free.
		// Custom destinations never appear here, they carry no price.
		baseTotal += priceByID[id]
	}

	var addOnTotal int64
	for _, addOn := range e.catalogRepo.GetAddOns() {
		if !session.HasAddOnSelected(addOn.ID) {
			continue
		}
		switch addOn.PricingMode {
		case data_models.PricingPerDay:
			addOnTotal += addOn.UnitPrice * int64(session.Days) * int64(session.PersonCount)
		case data_models.PricingPerNight:
			// Tier is informational only; it does not change the rate.
			addOnTotal += addOn.UnitPrice * int64(session.Nights) * int64(session.RoomCount)
		case data_models.PricingFlat:
			addOnTotal += addOn.UnitPrice
		}
	}

	return data_models.EstimateResult{
		BaseTotal:  baseTotal,
		AddOnTotal: addOnTotal,
		GrandTotal: baseTotal + addOnTotal,
	}, nil
}
