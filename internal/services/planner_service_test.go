package services

import (
	"errors"
	"testing"
	"time"

	"travelend/internal/models/data_models"
	"travelend/internal/models/request_models"
	mem "travelend/pkg/memcache"
	"travelend/pkg/utils"
)

func newTestPlanner(t *testing.T) PlannerServiceInterface {
	t.Helper()
	catalogRepo := newTestCatalogRepo(t)
	return NewPlannerService(
		mem.NewSessions(),
		catalogRepo,
		NewEstimateService(catalogRepo),
		"Thoothukudi",
		time.Hour,
	)
}

func TestCreateSessionDefaults(t *testing.T) {
	planner := newTestPlanner(t)

	resp, err := planner.CreateSession("outstation")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	session := resp.Session
	if session.ID == "" {
		t.Error("session should get an id")
	}
	if session.Origin != "Thoothukudi" {
		t.Errorf("Origin = %q, want home city default", session.Origin)
	}
	if session.Days != 1 || session.Nights != 0 || session.PersonCount != 1 || session.RoomCount != 1 {
		t.Errorf("counter defaults wrong: %+v", session)
	}
	if resp.Estimate.GrandTotal != 0 {
		t.Errorf("empty session estimate = %d, want 0", resp.Estimate.GrandTotal)
	}
}

func TestCreateSessionUnknownCategory(t *testing.T) {
	planner := newTestPlanner(t)

	if _, err := planner.CreateSession("cruise"); !errors.Is(err, utils.ErrUnknownCategory) {
		t.Errorf("CreateSession(cruise) error = %v, want ErrUnknownCategory", err)
	}
}

func TestToggleDestinationSetSemantics(t *testing.T) {
	planner := newTestPlanner(t)
	created, err := planner.CreateSession("outstation")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	id := created.Session.ID

	// Toggle on, off, on: membership, not a counter.
	for _, want := range []int64{4000, 0, 4000} {
		resp, err := planner.ToggleDestination(id, "madurai")
		if err != nil {
			t.Fatalf("ToggleDestination: %v", err)
		}
		if resp.Estimate.BaseTotal != want {
			t.Errorf("BaseTotal = %d, want %d", resp.Estimate.BaseTotal, want)
		}
	}
}

func TestToggleDestinationRejectsUnknownID(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("outstation")

	if _, err := planner.ToggleDestination(created.Session.ID, "atlantis"); !errors.Is(err, utils.ErrInvalidSelection) {
		t.Errorf("error = %v, want ErrInvalidSelection", err)
	}
}

func TestToggleAddOnFlatCountedOnce(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("local")
	id := created.Session.ID

	if _, err := planner.ToggleAddOn(id, "toll_parking"); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if _, err := planner.ToggleAddOn(id, "toll_parking"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	resp, err := planner.ToggleAddOn(id, "toll_parking")
	if err != nil {
		t.Fatalf("toggle on again: %v", err)
	}
	if resp.Estimate.AddOnTotal != 300 {
		t.Errorf("flat add-on counted %d, want exactly 300", resp.Estimate.AddOnTotal)
	}
}

func TestCountersClampAtFloor(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("outstation")
	id := created.Session.ID

	tests := []struct {
		counter string
		floor   int
		read    func(*data_models.PlanningSession) int
	}{
		{CounterDays, 1, func(s *data_models.PlanningSession) int { return s.Days }},
		{CounterNights, 0, func(s *data_models.PlanningSession) int { return s.Nights }},
		{CounterPersons, 1, func(s *data_models.PlanningSession) int { return s.PersonCount }},
		{CounterRooms, 1, func(s *data_models.PlanningSession) int { return s.RoomCount }},
	}

	for _, tt := range tests {
		t.Run(tt.counter, func(t *testing.T) {
			// Decrementing at the floor is an idempotent no-op.
			for i := 0; i < 3; i++ {
				resp, err := planner.DecrementCounter(id, tt.counter)
				if err != nil {
					t.Fatalf("DecrementCounter: %v", err)
				}
				if got := tt.read(&resp.Session); got != tt.floor {
					t.Errorf("%s = %d after decrement, want floor %d", tt.counter, got, tt.floor)
				}
			}

			resp, err := planner.IncrementCounter(id, tt.counter)
			if err != nil {
				t.Fatalf("IncrementCounter: %v", err)
			}
			if got := tt.read(&resp.Session); got != tt.floor+1 {
				t.Errorf("%s = %d after increment, want %d", tt.counter, got, tt.floor+1)
			}

			if _, err := planner.DecrementCounter(id, tt.counter); err != nil {
				t.Fatalf("DecrementCounter: %v", err)
			}
		})
	}

	if _, err := planner.IncrementCounter(id, "weeks"); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("unknown counter error = %v, want ErrInvalidInput", err)
	}
}

func TestCustomDestinations(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("outstation")
	id := created.Session.ID

	resp, err := planner.AddCustomDestination(id, "Hyderabad")
	if err != nil {
		t.Fatalf("AddCustomDestination: %v", err)
	}
	if resp.Estimate.BaseTotal != 0 {
		t.Errorf("custom destination changed BaseTotal to %d", resp.Estimate.BaseTotal)
	}

	// Case-insensitive de-dup.
	resp, err = planner.AddCustomDestination(id, "hyderabad")
	if err != nil {
		t.Fatalf("AddCustomDestination: %v", err)
	}
	if len(resp.Session.CustomDestinationNames) != 1 {
		t.Errorf("got %d custom destinations, want 1", len(resp.Session.CustomDestinationNames))
	}

	if _, err := planner.AddCustomDestination(id, "  "); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("blank name error = %v, want ErrInvalidInput", err)
	}

	resp, err = planner.RemoveCustomDestination(id, "HYDERABAD")
	if err != nil {
		t.Fatalf("RemoveCustomDestination: %v", err)
	}
	if len(resp.Session.CustomDestinationNames) != 0 {
		t.Errorf("custom destination not removed: %v", resp.Session.CustomDestinationNames)
	}
}

func TestSwitchCategoryClearsSelections(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("outstation")
	id := created.Session.ID

	if _, err := planner.ToggleDestination(id, "madurai"); err != nil {
		t.Fatalf("ToggleDestination: %v", err)
	}
	if _, err := planner.AddCustomDestination(id, "Hyderabad"); err != nil {
		t.Fatalf("AddCustomDestination: %v", err)
	}
	if _, err := planner.IncrementCounter(id, CounterDays); err != nil {
		t.Fatalf("IncrementCounter: %v", err)
	}

	resp, err := planner.SwitchCategory(id, "college")
	if err != nil {
		t.Fatalf("SwitchCategory: %v", err)
	}
	if len(resp.Session.SelectedDestinationIDs) != 0 {
		t.Errorf("catalog selection survived the switch: %v", resp.Session.SelectedDestinationIDs)
	}
	if len(resp.Session.CustomDestinationNames) != 0 {
		t.Errorf("custom destinations survived the switch: %v", resp.Session.CustomDestinationNames)
	}
	if resp.Session.Days != 2 {
		t.Errorf("Days = %d, counters should survive the switch", resp.Session.Days)
	}
	if resp.Estimate.GrandTotal != 0 {
		t.Errorf("estimate after switch = %d, want 0", resp.Estimate.GrandTotal)
	}
}

func TestSwitchCategorySameCategoryKeepsSelections(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("outstation")
	id := created.Session.ID

	if _, err := planner.ToggleDestination(id, "madurai"); err != nil {
		t.Fatalf("ToggleDestination: %v", err)
	}

	resp, err := planner.SwitchCategory(id, "outstation")
	if err != nil {
		t.Fatalf("SwitchCategory: %v", err)
	}
	if len(resp.Session.SelectedDestinationIDs) != 1 {
		t.Error("re-selecting the same category must not clear the selection")
	}
}

func TestUpdatePreferences(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("outstation")
	id := created.Session.ID

	origin := "Madurai"
	pickup := "6:30 AM"
	tier := "three_star"
	resp, err := planner.UpdatePreferences(id, request_models.PreferencesRequest{
		Origin:            &origin,
		PickupTime:        &pickup,
		AccommodationTier: &tier,
	})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if resp.Session.Origin != "Madurai" || resp.Session.PickupTime != "6:30 AM" {
		t.Errorf("preferences not applied: %+v", resp.Session)
	}
	if resp.Session.AccommodationTier != data_models.TierThreeStar {
		t.Errorf("AccommodationTier = %q", resp.Session.AccommodationTier)
	}

	// Clearing the origin falls back to the home city.
	empty := ""
	resp, err = planner.UpdatePreferences(id, request_models.PreferencesRequest{Origin: &empty})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if resp.Session.Origin != "Thoothukudi" {
		t.Errorf("Origin = %q, want home city fallback", resp.Session.Origin)
	}

	bad := "palace"
	if _, err := planner.UpdatePreferences(id, request_models.PreferencesRequest{AccommodationTier: &bad}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("bad tier error = %v, want ErrInvalidInput", err)
	}
}

func TestSessionNotFound(t *testing.T) {
	planner := newTestPlanner(t)

	if _, err := planner.GetSession("missing"); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("GetSession error = %v, want ErrSessionNotFound", err)
	}
	if _, err := planner.ToggleDestination("missing", "madurai"); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("ToggleDestination error = %v, want ErrSessionNotFound", err)
	}
}

func TestDeleteSession(t *testing.T) {
	planner := newTestPlanner(t)
	created, _ := planner.CreateSession("local")
	id := created.Session.ID

	planner.DeleteSession(id)
	if _, err := planner.GetSession(id); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("session should be gone after delete, got err = %v", err)
	}
}
