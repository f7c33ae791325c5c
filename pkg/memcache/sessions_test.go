package mem

import (
	"errors"
	"testing"
	"time"

	"travelend/internal/models/data_models"
)

func testSession(id string) *data_models.PlanningSession {
	return &data_models.PlanningSession{
		ID:           id,
		TripCategory: data_models.CategoryLocal,
		Days:         1,
		PersonCount:  1,
		RoomCount:    1,
	}
}

func TestSessionsPutGet(t *testing.T) {
	store := NewSessions()
	store.Put(testSession("s1"), time.Hour)

	got, ok := store.Get("s1")
	if !ok {
		t.Fatal("session should be retrievable before expiry")
	}
	if got.ID != "s1" {
		t.Errorf("ID = %q", got.ID)
	}

	if _, ok := store.Get("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestSessionsExpiry(t *testing.T) {
	store := NewSessions()
	store.Put(testSession("s1"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if _, ok := store.Get("s1"); ok {
		t.Error("expired session should not resolve")
	}
	if _, err := store.Update("s1", func(*data_models.PlanningSession) error { return nil }); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Update on expired session error = %v, want ErrSessionExpired", err)
	}
}

func TestSessionsSlidingExpiry(t *testing.T) {
	store := NewSessions()
	store.Put(testSession("s1"), 60*time.Millisecond)

	// Keep touching it past the original deadline.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		if _, ok := store.Get("s1"); !ok {
			t.Fatalf("session expired despite being touched (iteration %d)", i)
		}
	}
}

func TestSessionsUpdate(t *testing.T) {
	store := NewSessions()
	store.Put(testSession("s1"), time.Hour)

	got, err := store.Update("s1", func(s *data_models.PlanningSession) error {
		s.Days = 5
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Days != 5 {
		t.Errorf("Days = %d, want 5", got.Days)
	}

	// A failing mutation surfaces its error unchanged.
	wantErr := errors.New("boom")
	if _, err := store.Update("s1", func(*data_models.PlanningSession) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("Update error = %v, want the mutation error", err)
	}
}

func TestSessionsDelete(t *testing.T) {
	store := NewSessions()
	store.Put(testSession("s1"), time.Hour)

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Error("deleted session should not resolve")
	}

	store.Delete("s1") // deleting twice is fine
}
