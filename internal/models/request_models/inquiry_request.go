package request_models

type CollegeTripInquiryRequest struct {
	Name        string `json:"name" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Department  string `json:"department"`
	PersonCount int    `json:"person_count"`
	Days        int    `json:"days"`
	Destination string `json:"destination" binding:"required"`
}

type TaxiTariffInquiryRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	OpeningTiming string `json:"opening_timing"`
	ClosingTiming string `json:"closing_timing"`
	Days          int    `json:"days"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	VehicleType   string `json:"vehicle_type"`
}
