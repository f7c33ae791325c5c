package services

import (
	"context"
	"errors"
	"testing"

	"travelend/internal/models/data_models"
	"travelend/internal/models/request_models"
)

type stubContentRepo struct {
	testimonials []data_models.Testimonial
	fetchErr     error
	submitted    []data_models.ContactQuery
	submitErr    error
}

func (s *stubContentRepo) FetchTestimonials(ctx context.Context, storeID string) ([]data_models.Testimonial, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.testimonials, nil
}

func (s *stubContentRepo) SubmitQuery(ctx context.Context, query data_models.ContactQuery) error {
	s.submitted = append(s.submitted, query)
	return s.submitErr
}

func TestGetTestimonialsFromContentAPI(t *testing.T) {
	repo := &stubContentRepo{
		testimonials: []data_models.Testimonial{{ID: "t1", Name: "Asha"}},
	}
	service := NewContentService(repo, newTestCatalogRepo(t), "store-1")

	got := service.GetTestimonials(context.Background())
	if got.Source != "content_api" {
		t.Errorf("Source = %q, want content_api", got.Source)
	}
	if len(got.Testimonials) != 1 || got.Testimonials[0].ID != "t1" {
		t.Errorf("unexpected testimonials: %+v", got.Testimonials)
	}
}

func TestGetTestimonialsFallsBackToBundled(t *testing.T) {
	repo := &stubContentRepo{fetchErr: errors.New("timeout")}
	service := NewContentService(repo, newTestCatalogRepo(t), "store-1")

	got := service.GetTestimonials(context.Background())
	if got.Source != "bundled" {
		t.Errorf("Source = %q, want bundled", got.Source)
	}
	if len(got.Testimonials) == 0 {
		t.Error("bundled fallback should never be empty")
	}
}

func TestSubmitQueryCarriesStoreID(t *testing.T) {
	repo := &stubContentRepo{}
	service := NewContentService(repo, newTestCatalogRepo(t), "store-1")

	err := service.SubmitQuery(context.Background(), request_models.SubmitQueryRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Message: "Need a quote for Munnar",
		Subject: "Trip quote",
	})
	if err != nil {
		t.Fatalf("SubmitQuery: %v", err)
	}

	if len(repo.submitted) != 1 {
		t.Fatalf("got %d submissions, want 1", len(repo.submitted))
	}
	query := repo.submitted[0]
	if query.StoreID != "store-1" {
		t.Errorf("StoreID = %q, want store-1", query.StoreID)
	}
	if query.MetaData.Subject != "Trip quote" {
		t.Errorf("Subject = %q", query.MetaData.Subject)
	}
}
