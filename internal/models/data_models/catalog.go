package data_models

import "strings"

type TripCategory string

const (
	CategoryLocal      TripCategory = "local"
	CategoryOutstation TripCategory = "outstation"
	CategoryCollege    TripCategory = "college"
)

// ParseTripCategory normalizes user input into one of the three fixed
// categories. The bool result is false for anything outside the closed set.
func ParseTripCategory(raw string) (TripCategory, bool) {
	switch TripCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryLocal:
		return CategoryLocal, true
	case CategoryOutstation:
		return CategoryOutstation, true
	case CategoryCollege:
		return CategoryCollege, true
	default:
		return "", false
	}
}

func (c TripCategory) Title() string {
	switch c {
	case CategoryLocal:
		return "Local Trip"
	case CategoryCollege:
		return "IV or College Trip"
	default:
		return "Outstation Trip"
	}
}

type PricingMode string

const (
	PricingPerDay   PricingMode = "per_day"
	PricingPerNight PricingMode = "per_night"
	PricingFlat     PricingMode = "flat"
)

// Destination is a catalog entry. BasePrice of 0 is a valid sentinel meaning
// "quote on request", not "free".
type Destination struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
}

type AddOnOption struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	UnitPrice   int64       `json:"unit_price"`
	Description string      `json:"description"`
	PricingMode PricingMode `json:"pricing_mode"`
}

type TouristSpot struct {
	Name     string `json:"name"`
	District string `json:"district"`
}

type TourPackage struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Price         int64  `json:"price"`
	Duration      string `json:"duration"`
	Accommodation string `json:"accommodation"`
	Tag           string `json:"tag,omitempty"`
	Image         string `json:"image,omitempty"`
}

type TariffRow struct {
	Vehicle    string `json:"vehicle"`
	MinKm      int    `json:"min_km"`
	RatePerKm  int64  `json:"rate_per_km"`
	DriverBata int64  `json:"driver_bata"`
}

type TaxiTariff struct {
	Tariffs        []TariffRow `json:"tariffs"`
	VehicleOptions []string    `json:"vehicle_options"`
}
