package repositories

import (
	"travelend/internal/infra"
	"travelend/internal/models/data_models"
	"travelend/pkg/utils"
)

type CatalogRepository interface {
	GetDestinationsByCategory(category data_models.TripCategory) ([]data_models.Destination, error)
	GetDestination(category data_models.TripCategory, id string) (*data_models.Destination, error)
	GetAddOns() []data_models.AddOnOption
	GetAddOn(id string) (*data_models.AddOnOption, error)
	GetTouristSpots() []data_models.TouristSpot
	GetPackages() []data_models.TourPackage
	GetPackageByID(id string) (*data_models.TourPackage, error)
	GetTariff() data_models.TaxiTariff
	GetBundledReviews() []data_models.Testimonial
}

type catalogRepository struct {
	fixtures *infra.FixtureSet
}

func NewCatalogRepository(fixtures *infra.FixtureSet) CatalogRepository {
	return &catalogRepository{fixtures: fixtures}
}

func (r *catalogRepository) GetDestinationsByCategory(category data_models.TripCategory) ([]data_models.Destination, error) {
	destinations, ok := r.fixtures.Destinations[category]
	if !ok {
		return nil, utils.ErrUnknownCategory
	}
	return destinations, nil
}

func (r *catalogRepository) GetDestination(category data_models.TripCategory, id string) (*data_models.Destination, error) {
	destinations, err := r.GetDestinationsByCategory(category)
	if err != nil {
		return nil, err
	}
	for i := range destinations {
		if destinations[i].ID == id {
			return &destinations[i], nil
		}
	}
	return nil, utils.ErrInvalidSelection
}

func (r *catalogRepository) GetAddOns() []data_models.AddOnOption {
	return r.fixtures.AddOns
}

func (r *catalogRepository) GetAddOn(id string) (*data_models.AddOnOption, error) {
	for i := range r.fixtures.AddOns {
		if r.fixtures.AddOns[i].ID == id {
			return &r.fixtures.AddOns[i], nil
		}
	}
	return nil, utils.ErrInvalidSelection
}

func (r *catalogRepository) GetTouristSpots() []data_models.TouristSpot {
	return r.fixtures.TouristSpots
}

func (r *catalogRepository) GetPackages() []data_models.TourPackage {
	return r.fixtures.Packages
}

func (r *catalogRepository) GetPackageByID(id string) (*data_models.TourPackage, error) {
	for i := range r.fixtures.Packages {
		if r.fixtures.Packages[i].ID == id {
			return &r.fixtures.Packages[i], nil
		}
	}
	return nil, utils.ErrPackageNotFound
}

func (r *catalogRepository) GetTariff() data_models.TaxiTariff {
	return r.fixtures.Tariff
}

func (r *catalogRepository) GetBundledReviews() []data_models.Testimonial {
	return r.fixtures.Reviews
}
