package request_models

type AddStopRequest struct {
	CityName  string `json:"city_name"`
	Country   string `json:"country"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StopOrder int    `json:"stop_order"`
	Notes     string `json:"notes"`
}
