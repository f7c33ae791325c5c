package services

import (
	"context"
	"log"

	"travelend/internal/models/data_models"
	"travelend/internal/models/request_models"
	"travelend/internal/models/response_models"
	"travelend/internal/repositories"
)

type ContentServiceInterface interface {
	GetTestimonials(ctx context.Context) *response_models.TestimonialsResponse
	SubmitQuery(ctx context.Context, req request_models.SubmitQueryRequest) error
}

type ContentService struct {
	contentRepo repositories.ContentRepository
	catalogRepo repositories.CatalogRepository
	storeID     string
}

func NewContentService(
	contentRepo repositories.ContentRepository,
	catalogRepo repositories.CatalogRepository,
	storeID string,
) ContentServiceInterface {
	return &ContentService{
		contentRepo: contentRepo,
		catalogRepo: catalogRepo,
		storeID:     storeID,
	}
}

// GetTestimonials prefers the content API and falls back to the bundled
// reviews file on any failure, so the reviews page never renders empty.
func (s *ContentService) GetTestimonials(ctx context.Context) *response_models.TestimonialsResponse {
	testimonials, err := s.contentRepo.FetchTestimonials(ctx, s.storeID)
	if err != nil {
		log.Printf("Fetching testimonials failed, using bundled reviews: %v", err)
		return &response_models.TestimonialsResponse{
			Source:       "bundled",
			Testimonials: s.catalogRepo.GetBundledReviews(),
		}
	}
	return &response_models.TestimonialsResponse{
		Source:       "content_api",
		Testimonials: testimonials,
	}
}

func (s *ContentService) SubmitQuery(ctx context.Context, req request_models.SubmitQueryRequest) error {
	query := data_models.ContactQuery{
		StoreID: s.storeID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	query.MetaData.Subject = req.Subject

	return s.contentRepo.SubmitQuery(ctx, query)
}
