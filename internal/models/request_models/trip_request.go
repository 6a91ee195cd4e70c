package request_models

type CreateTripRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CoverPhoto  string `json:"cover_photo"`
}

// UpdateTripRequest is a full-field replace, including is_public.
type UpdateTripRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CoverPhoto  string `json:"cover_photo"`
	IsPublic    bool   `json:"is_public"`
}
