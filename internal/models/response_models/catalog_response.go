package response_models

type DestinationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
	// PriceOnRequest marks the zero-price sentinel: the fare is quoted
	// manually, the destination is not free.
	PriceOnRequest bool `json:"price_on_request"`
}

type DestinationCatalogResponse struct {
	Category     string                `json:"category"`
	Title        string                `json:"title"`
	Destinations []DestinationResponse `json:"destinations"`
}

type AddOnResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	UnitPrice   int64  `json:"unit_price"`
	Description string `json:"description"`
	PricingMode string `json:"pricing_mode"`
}

type SuggestionResponse struct {
	Name     string `json:"name"`
	District string `json:"district,omitempty"`
}
