package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"travelend/internal/models/data_models"
	"travelend/pkg/utils"
)

// ContentRepository talks to the external content API that hosts
// testimonials and receives contact-form queries. The API is an opaque
// collaborator; only its request/response shapes are known here.
type ContentRepository interface {
	FetchTestimonials(ctx context.Context, storeID string) ([]data_models.Testimonial, error)
	SubmitQuery(ctx context.Context, query data_models.ContactQuery) error
}

type testimonialRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Review       string `json:"review"`
	Rating       int    `json:"rating"`
	ProfileImage string `json:"profile_image"`
	MetaData     struct {
		Gallery      []string `json:"gallery"`
		VisitedPlace string   `json:"visited_place"`
		TripType     string   `json:"trip_type"`
		ServiceType  string   `json:"service_type"`
		Subtitle     string   `json:"subtitle"`
		IsVerified   *bool    `json:"is_verified"`
	} `json:"meta_data"`
}

const fallbackAvatarURL = "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp&f=y"

type contentRepository struct {
	baseURL string
	client  *http.Client
}

func NewContentRepository(baseURL string) ContentRepository {
	return &contentRepository{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *contentRepository) FetchTestimonials(ctx context.Context, storeID string) ([]data_models.Testimonial, error) {
	if r.baseURL == "" || storeID == "" {
		return nil, fmt.Errorf("%w: content api not configured", utils.ErrContentAPIError)
	}

	endpoint := fmt.Sprintf("%s/api/v1/public/testimonials?store_id=%s", r.baseURL, url.QueryEscape(storeID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrContentAPIError, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrContentAPIError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", utils.ErrContentAPIError, resp.StatusCode)
	}

	var body struct {
		Data struct {
			Testimonials []testimonialRecord `json:"testimonials"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrContentAPIError, err)
	}
	if len(body.Data.Testimonials) == 0 {
		return nil, fmt.Errorf("%w: no testimonials returned", utils.ErrContentAPIError)
	}

	out := make([]data_models.Testimonial, 0, len(body.Data.Testimonials))
	for _, record := range body.Data.Testimonials {
		out = append(out, normalizeTestimonial(record))
	}
	return out, nil
}

func normalizeTestimonial(record testimonialRecord) data_models.Testimonial {
	t := data_models.Testimonial{
		ID:           record.ID,
		Name:         record.Name,
		Subtitle:     record.MetaData.Subtitle,
		Content:      record.Review,
		Rating:       record.Rating,
		Image:        record.ProfileImage,
		Gallery:      record.MetaData.Gallery,
		VisitedPlace: record.MetaData.VisitedPlace,
		TripType:     record.MetaData.TripType,
		ServiceType:  record.MetaData.ServiceType,
		IsVerified:   record.MetaData.IsVerified == nil || *record.MetaData.IsVerified,
	}
	if t.Subtitle == "" {
		t.Subtitle = "Traveler"
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	if t.Image == "" {
		t.Image = fallbackAvatarURL
	}
	return t
}

func (r *contentRepository) SubmitQuery(ctx context.Context, query data_models.ContactQuery) error {
	if r.baseURL == "" {
		return fmt.Errorf("%w: content api not configured", utils.ErrContentAPIError)
	}

	payload, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrContentAPIError, err)
	}

	endpoint := r.baseURL + "/api/v1/public/queries"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrContentAPIError, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrContentAPIError, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrContentAPIError, err)
	}

	var body struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != nil {
		return fmt.Errorf("%w: %s", utils.ErrContentAPIError, body.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", utils.ErrContentAPIError, resp.StatusCode)
	}
	return nil
}
