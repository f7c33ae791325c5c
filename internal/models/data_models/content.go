package data_models

// Testimonial is the normalized review shape served to the site, whether it
// came from the content API or from the bundled fallback file.
type Testimonial struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	Content      string   `json:"content"`
	Rating       int      `json:"rating"`
	Image        string   `json:"image"`
	Gallery      []string `json:"gallery,omitempty"`
	VisitedPlace string   `json:"visited_place,omitempty"`
	TripType     string   `json:"trip_type,omitempty"`
	ServiceType  string   `json:"service_type,omitempty"`
	IsVerified   bool     `json:"is_verified"`
}

// ContactQuery mirrors the payload the external content API expects on
// /api/v1/public/queries.
type ContactQuery struct {
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	MetaData struct {
		Subject string `json:"subject"`
	} `json:"meta_data"`
}
