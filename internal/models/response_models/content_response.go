package response_models

import "travelend/internal/models/data_models"

// Source is "content_api" when the external API answered, "bundled" when the
// service fell back to the packaged reviews file.
type TestimonialsResponse struct {
	Source       string                    `json:"source"`
	Testimonials []data_models.Testimonial `json:"testimonials"`
}
