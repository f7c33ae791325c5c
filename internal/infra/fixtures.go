package infra

import (
	"embed"
	"encoding/json"
	"fmt"

	"travelend/internal/models/data_models"
	"travelend/pkg/utils"
)

//go:embed data/*.json
var fixtureFS embed.FS

// FixtureSet is the parsed, validated reference data the whole service runs
// on. It replaces a database: the site owns no persistent backend.
type FixtureSet struct {
	Destinations map[data_models.TripCategory][]data_models.Destination
	AddOns       []data_models.AddOnOption
	TouristSpots []data_models.TouristSpot
	Packages     []data_models.TourPackage
	Reviews      []data_models.Testimonial
	Tariff       data_models.TaxiTariff
}

// LoadFixtures reads and validates every bundled fixture. A malformed entry
// is a deployment defect, so the error is meant to abort startup.
func LoadFixtures() (*FixtureSet, error) {
	set := &FixtureSet{}

	rawDestinations := map[string][]data_models.Destination{}
	if err := readFixture("data/destinations.json", &rawDestinations); err != nil {
		return nil, err
	}
	set.Destinations = make(map[data_models.TripCategory][]data_models.Destination, len(rawDestinations))
	for rawCategory, destinations := range rawDestinations {
		category, ok := data_models.ParseTripCategory(rawCategory)
		if !ok {
			return nil, fmt.Errorf("%w: destinations.json category %q", utils.ErrMalformedCatalog, rawCategory)
		}
		seen := make(map[string]bool, len(destinations))
		for _, destination := range destinations {
			if destination.ID == "" || destination.Name == "" {
				return nil, fmt.Errorf("%w: destination with empty id or name in %q", utils.ErrMalformedCatalog, rawCategory)
			}
			if destination.BasePrice < 0 {
				return nil, fmt.Errorf("%w: destination %q has negative base price", utils.ErrMalformedCatalog, destination.ID)
			}
			if seen[destination.ID] {
				return nil, fmt.Errorf("%w: duplicate destination id %q in %q", utils.ErrMalformedCatalog, destination.ID, rawCategory)
			}
			seen[destination.ID] = true
		}
		set.Destinations[category] = destinations
	}

	if err := readFixture("data/addons.json", &set.AddOns); err != nil {
		return nil, err
	}
	seenAddOns := make(map[string]bool, len(set.AddOns))
	for _, addOn := range set.AddOns {
		if addOn.ID == "" || addOn.Label == "" {
			return nil, fmt.Errorf("%w: add-on with empty id or label", utils.ErrMalformedCatalog)
		}
		if addOn.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: add-on %q has negative unit price", utils.ErrMalformedCatalog, addOn.ID)
		}
		switch addOn.PricingMode {
		case data_models.PricingPerDay, data_models.PricingPerNight, data_models.PricingFlat:
		default:
			return nil, fmt.Errorf("%w: add-on %q has unknown pricing mode %q", utils.ErrMalformedCatalog, addOn.ID, addOn.PricingMode)
		}
		if seenAddOns[addOn.ID] {
			return nil, fmt.Errorf("%w: duplicate add-on id %q", utils.ErrMalformedCatalog, addOn.ID)
		}
		seenAddOns[addOn.ID] = true
	}

	spotsByRegion := map[string][]data_models.TouristSpot{}
	if err := readFixture("data/tourist_spots.json", &spotsByRegion); err != nil {
		return nil, err
	}
	// Region order is fixed so suggestion order stays deterministic.
	for _, region := range []string{"TamilNadu", "Kerala"} {
		set.TouristSpots = append(set.TouristSpots, spotsByRegion[region]...)
	}

	var packageFile struct {
		Packages []data_models.TourPackage `json:"packages"`
	}
	if err := readFixture("data/packages.json", &packageFile); err != nil {
		return nil, err
	}
	set.Packages = packageFile.Packages

	if err := readFixture("data/reviews.json", &set.Reviews); err != nil {
		return nil, err
	}

	if err := readFixture("data/taxi_tariff.json", &set.Tariff); err != nil {
		return nil, err
	}

	return set, nil
}

func readFixture(name string, out interface{}) error {
	raw, err := fixtureFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}
