package dto

// DurationResponse represents the API response for an open-time query
type DurationResponse struct {
	Calendar string `json:"calendar"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
	Seconds  int64  `json:"seconds"`
}

// WorkingTimeResponse represents the API response for a working-time check
type WorkingTimeResponse struct {
	Calendar    string `json:"calendar"`
	At          string `json:"at"`
	WorkingTime bool   `json:"workingTime"`
}
