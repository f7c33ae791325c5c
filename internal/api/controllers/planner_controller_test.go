package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travelend/internal/infra"
	"travelend/internal/repositories"
	"travelend/internal/services"
	mem "travelend/pkg/memcache"
)

type sessionEnvelope struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
	Data   struct {
		Session struct {
			ID                     string   `json:"id"`
			TripCategory           string   `json:"trip_category"`
			SelectedDestinationIDs []string `json:"selected_destination_ids"`
			Days                   int      `json:"days"`
		} `json:"session"`
		Estimate struct {
			GrandTotal     int64  `json:"grand_total"`
			FormattedTotal string `json:"formatted_total"`
		} `json:"estimate"`
	} `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixtures, err := infra.LoadFixtures()
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	catalogRepo := repositories.NewCatalogRepository(fixtures)
	planner := services.NewPlannerService(
		mem.NewSessions(),
		catalogRepo,
		services.NewEstimateService(catalogRepo),
		"Thoothukudi",
		time.Hour,
	)
	controller := NewPlannerController(planner)

	r := gin.New()
	group := r.Group("/planner/sessions")
	group.POST("", controller.CreateSession)
	group.GET("/:sessionId", controller.GetSession)
	group.POST("/:sessionId/toggle-destination", controller.ToggleDestination)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, sessionEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope sessionEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v\n%s", err, w.Body.String())
	}
	return w, envelope
}

func TestPlannerSessionFlow(t *testing.T) {
	r := newTestRouter(t)

	w, created := doJSON(t, r, http.MethodPost, "/planner/sessions", `{"trip_category":"outstation"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	if created.Status != "success" || created.Data.Session.ID == "" {
		t.Fatalf("unexpected create envelope: %+v", created)
	}
	if created.Data.Session.TripCategory != "outstation" || created.Data.Session.Days != 1 {
		t.Errorf("session defaults wrong: %+v", created.Data.Session)
	}

	id := created.Data.Session.ID
	w, toggled := doJSON(t, r, http.MethodPost, "/planner/sessions/"+id+"/toggle-destination", `{"destination_id":"madurai"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", w.Code, w.Body.String())
	}
	if toggled.Data.Estimate.GrandTotal != 4000 {
		t.Errorf("GrandTotal = %d, want 4000", toggled.Data.Estimate.GrandTotal)
	}
	if toggled.Data.Estimate.FormattedTotal != "₹4,000" {
		t.Errorf("FormattedTotal = %q", toggled.Data.Estimate.FormattedTotal)
	}

	w, fetched := doJSON(t, r, http.MethodGet, "/planner/sessions/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if len(fetched.Data.Session.SelectedDestinationIDs) != 1 {
		t.Errorf("selection not persisted across requests: %+v", fetched.Data.Session)
	}
}

func TestPlannerSessionErrors(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/planner/sessions", `{"trip_category":"cruise"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad category status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/planner/sessions", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing body status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/planner/sessions/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", w.Code)
	}
}
