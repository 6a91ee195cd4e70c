package response_models

// BudgetResponse is derived per request from the trip's stops and
// activities; it is never persisted.
type BudgetResponse struct {
	Activities    float64 `json:"activities"`
	Accommodation float64 `json:"accommodation"`
	Transport     float64 `json:"transport"`
	Meals         float64 `json:"meals"`
	Total         float64 `json:"total"`
}
