package services

import (
	"strings"

	"travelend/internal/models/data_models"
	"travelend/internal/models/response_models"
	"travelend/internal/repositories"
)

const maxSuggestions = 8

type CatalogServiceInterface interface {
	ResolveDestinations(category data_models.TripCategory) (*response_models.DestinationCatalogResponse, error)
	ResolveAddOns(category data_models.TripCategory) []response_models.AddOnResponse
	Search(query string, candidates []string) []string
	SuggestPlaces(query string) []response_models.SuggestionResponse
	ListPackages() []data_models.TourPackage
	GetPackage(id string) (*data_models.TourPackage, error)
	GetTariff() data_models.TaxiTariff
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *CatalogService) ResolveDestinations(category data_models.TripCategory) (*response_models.DestinationCatalogResponse, error) {
	destinations, err := s.catalogRepo.GetDestinationsByCategory(category)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, destination := range destinations {
		out = append(out, response_models.DestinationResponse{
			ID:             destination.ID,
			Name:           destination.Name,
			BasePrice:      destination.BasePrice,
			PriceOnRequest: destination.BasePrice == 0,
		})
	}

	return &response_models.DestinationCatalogResponse{
		Category:     string(category),
		Title:        category.Title(),
		Destinations: out,
	}, nil
}

// ResolveAddOns takes the category so per-category filtering can land later
// without breaking callers. Today the list is the same for all three.
func (s *CatalogService) ResolveAddOns(_ data_models.TripCategory) []response_models.AddOnResponse {
	addOns := s.catalogRepo.GetAddOns()

	out := make([]response_models.AddOnResponse, 0, len(addOns))
	for _, addOn := range addOns {
		out = append(out, response_models.AddOnResponse{
			ID:          addOn.ID,
			Label:       addOn.Label,
			UnitPrice:   addOn.UnitPrice,
			Description: addOn.Description,
			PricingMode: string(addOn.PricingMode),
		})
	}
	return out
}

// Search is a case-insensitive substring match over candidates, capped at
// maxSuggestions, keeping the candidates' relative order. An empty query
// yields no matches so the caller can hide the suggestion surface.
func (s *CatalogService) Search(query string, candidates []string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}
	}

	matches := make([]string, 0, maxSuggestions)
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), query) {
			matches = append(matches, candidate)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

func (s *CatalogService) SuggestPlaces(query string) []response_models.SuggestionResponse {
	spots := s.catalogRepo.GetTouristSpots()

	names := make([]string, 0, len(spots))
	districts := make(map[string]string, len(spots))
	for _, spot := range spots {
		if _, seen := districts[spot.Name]; seen {
			continue
		}
		names = append(names, spot.Name)
		districts[spot.Name] = spot.District
	}

	matches := s.Search(query, names)
	out := make([]response_models.SuggestionResponse, 0, len(matches))
	for _, name := range matches {
		out = append(out, response_models.SuggestionResponse{
			Name:     name,
			District: districts[name],
		})
	}
	return out
}

func (s *CatalogService) ListPackages() []data_models.TourPackage {
	return s.catalogRepo.GetPackages()
}

func (s *CatalogService) GetPackage(id string) (*data_models.TourPackage, error) {
	return s.catalogRepo.GetPackageByID(id)
}

func (s *CatalogService) GetTariff() data_models.TaxiTariff {
	return s.catalogRepo.GetTariff()
}
