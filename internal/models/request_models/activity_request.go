package request_models

// Cost is typed any on purpose: the client may send a number, a numeric
// string, or nothing at all. Anything unparsable becomes 0, never an error.
type AddActivityRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Cost         any     `json:"cost"`
	Duration     *int    `json:"duration"`
	ActivityDate *string `json:"activity_date"`
}
