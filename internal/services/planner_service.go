package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"travelend/internal/models/data_models"
	"travelend/internal/models/request_models"
	"travelend/internal/models/response_models"
	"travelend/internal/repositories"
	mem "travelend/pkg/memcache"
	"travelend/pkg/utils"
)

const (
	CounterDays    = "days"
	CounterNights  = "nights"
	CounterPersons = "persons"
	CounterRooms   = "rooms"
)

type PlannerServiceInterface interface {
	CreateSession(category string) (*response_models.SessionResponse, error)
	GetSession(sessionID string) (*response_models.SessionResponse, error)
	DeleteSession(sessionID string)
	ToggleDestination(sessionID string, destinationID string) (*response_models.SessionResponse, error)
	AddCustomDestination(sessionID string, name string) (*response_models.SessionResponse, error)
	RemoveCustomDestination(sessionID string, name string) (*response_models.SessionResponse, error)
	ToggleAddOn(sessionID string, addOnID string) (*response_models.SessionResponse, error)
	IncrementCounter(sessionID string, counter string) (*response_models.SessionResponse, error)
	DecrementCounter(sessionID string, counter string) (*response_models.SessionResponse, error)
	UpdatePreferences(sessionID string, req request_models.PreferencesRequest) (*response_models.SessionResponse, error)
	SwitchCategory(sessionID string, category string) (*response_models.SessionResponse, error)
}

type PlannerService struct {
	store       mem.SessionStore
	catalogRepo repositories.CatalogRepository
	estimates   EstimateServiceInterface
	homeCity    string
	sessionTTL  time.Duration
}

func NewPlannerService(
	store mem.SessionStore,
	catalogRepo repositories.CatalogRepository,
	estimates EstimateServiceInterface,
	homeCity string,
	sessionTTL time.Duration,
) PlannerServiceInterface {
	return &PlannerService{
		store:       store,
		catalogRepo: catalogRepo,
		estimates:   estimates,
		homeCity:    homeCity,
		sessionTTL:  sessionTTL,
	}
}

func (p *PlannerService) CreateSession(category string) (*response_models.SessionResponse, error) {
	tripCategory, ok := data_models.ParseTripCategory(category)
	if !ok {
		return nil, utils.ErrUnknownCategory
	}

	session := &data_models.PlanningSession{
		ID:                     uuid.New().String(),
		TripCategory:           tripCategory,
		Origin:                 p.homeCity,
		SelectedDestinationIDs: []string{},
		CustomDestinationNames: []string{},
		SelectedAddOnIDs:       []string{},
		Days:                   1,
		Nights:                 0,
		PersonCount:            1,
		RoomCount:              1,
		AccommodationTier:      data_models.TierHotel,
	}

	p.store.Put(session, p.sessionTTL)
	return p.buildResponse(session)
}

func (p *PlannerService) GetSession(sessionID string) (*response_models.SessionResponse, error) {
	session, ok := p.store.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return p.buildResponse(session)
}

func (p *PlannerService) DeleteSession(sessionID string) {
	p.store.Delete(sessionID)
}

func (p *PlannerService) ToggleDestination(sessionID string, destinationID string) (*response_models.SessionResponse, error) {
	return p.mutate(sessionID, func(session *data_models.PlanningSession) error {
		if session.HasDestinationSelected(destinationID) {
			session.SelectedDestinationIDs = removeString(session.SelectedDestinationIDs, destinationID)
			return nil
		}
		if _, err := p.catalogRepo.GetDestination(session.TripCategory, destinationID); err != nil {
			return err
		}
		session.SelectedDestinationIDs = append(session.SelectedDestinationIDs, destinationID)
		return nil
	})
}

func (p *PlannerService) AddCustomDestination(sessionID string, name string) (*response_models.SessionResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.ErrInvalidInput
	}
	return p.mutate(sessionID, func(session *data_models.PlanningSession) error {
		for _, existing := range session.CustomDestinationNames {
			if strings.EqualFold(existing, name) {
				return nil
			}
		}
		session.CustomDestinationNames = append(session.CustomDestinationNames, name)
		return nil
	})
}

func (p *PlannerService) RemoveCustomDestination(sessionID string, name string) (*response_models.SessionResponse, error) {
	return p.mutate(sessionID, func(session *data_models.PlanningSession) error {
		kept := session.CustomDestinationNames[:0]
		for _, existing := range session.CustomDestinationNames {
			if !strings.EqualFold(existing, name) {
				kept = append(kept, existing)
			}
		}
		session.CustomDestinationNames = kept
		return nil
	})
}

func (p *PlannerService) ToggleAddOn(sessionID string, addOnID string) (*response_models.SessionResponse, error) {
	return p.mutate(sessionID, func(session *data_models.PlanningSession) error {
		if session.HasAddOnSelected(addOnID) {
			session.SelectedAddOnIDs = removeString(session.SelectedAddOnIDs, addOnID)
			return nil
		}
		if _, err := p.catalogRepo.GetAddOn(addOnID); err != nil {
			return err
		}
		session.SelectedAddOnIDs = append(session.SelectedAddOnIDs, addOnID)
		return nil
	})
}

func (p *PlannerService) IncrementCounter(sessionID string, counter string) (*response_models.SessionResponse, error) {
	return p.adjustCounter(sessionID, counter, +1)
}

func (p *PlannerService) DecrementCounter(sessionID string, counter string) (*response_models.SessionResponse, error) {
	return p.adjustCounter(sessionID, counter, -1)
}

func (p *PlannerService) adjustCounter(sessionID string, counter string, delta int) (*response_models.SessionResponse, error) {
	return p.mutate(sessionID, func(session *data_models.PlanningSession) error {
		// Decrements clamp at the floor instead of erroring.
		switch counter {
		case CounterDays:
			session.Days = clamp(session.Days+delta, 1)
		case CounterNights:
			session.Nights = clamp(session.Nights+delta, 0)
		case CounterPersons:
			session.PersonCount = clamp(session.PersonCount+delta, 1)
		case CounterRooms:
			session.RoomCount = clamp(session.RoomCount+delta, 1)
		default:
			return utils.ErrInvalidInput
		}
		return nil
	})
}

func (p *PlannerService) UpdatePreferences(sessionID string, req request_models.PreferencesRequest) (*response_models.SessionResponse, error) {
	var tier data_models.AccommodationTier
	if req.AccommodationTier != nil {
		parsed, ok := data_models.ParseAccommodationTier(*req.AccommodationTier)
		if !ok {
			return nil, utils.ErrInvalidInput
		}
		tier = parsed
	}

	return p.mutate(sessionID, func(session *data_models.PlanningSession) error {
		if req.Origin != nil {
			origin := strings.TrimSpace(*req.Origin)
			if origin == "" {
				origin = p.homeCity
			}
			session.Origin = origin
		}
		if req.PickupTime != nil {
			session.PickupTime = strings.TrimSpace(*req.PickupTime)
		}
		if req.AccommodationTier != nil {
			session.AccommodationTier = tier
		}
		return nil
	})
}

// SwitchCategory resets the catalog selection: destination ids are not
// portable across catalogs, and custom names are cleared with them so the
// session never carries stale picks from the previous category. Counters,
// origin and preferences survive the switch.
func (p *PlannerService) SwitchCategory(sessionID string, category string) (*response_models.SessionResponse, error) {
	tripCategory, ok := data_models.ParseTripCategory(category)
	if !ok {
		return nil, utils.ErrUnknownCategory
	}
	return p.mutate(sessionID, func(session *data_models.PlanningSession) error {
		if session.TripCategory == tripCategory {
			return nil
		}
		session.TripCategory = tripCategory
		session.SelectedDestinationIDs = []string{}
		session.CustomDestinationNames = []string{}
		return nil
	})
}

func (p *PlannerService) mutate(sessionID string, fn func(*data_models.PlanningSession) error) (*response_models.SessionResponse, error) {
	session, err := p.store.Update(sessionID, fn)
	if err != nil {
		if errors.Is(err, mem.ErrSessionExpired) {
			return nil, utils.ErrSessionNotFound
		}
		return nil, err
	}
	return p.buildResponse(session)
}

func (p *PlannerService) buildResponse(session *data_models.PlanningSession) (*response_models.SessionResponse, error) {
	estimate, err := p.estimates.ComputeEstimate(session)
	if err != nil {
		return nil, err
	}
	return &response_models.SessionResponse{
		Session: *session,
		Estimate: response_models.EstimateResponse{
			BaseTotal:      estimate.BaseTotal,
			AddOnTotal:     estimate.AddOnTotal,
			GrandTotal:     estimate.GrandTotal,
			FormattedTotal: utils.FormatINR(estimate.GrandTotal),
		},
	}, nil
}

func removeString(values []string, target string) []string {
	kept := values[:0]
	for _, value := range values {
		if value != target {
			kept = append(kept, value)
		}
	}
	return kept
}

func clamp(value int, floor int) int {
	if value < floor {
		return floor
	}
	return value
}
