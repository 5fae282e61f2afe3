package models

// ErrorResponse is the JSON body written for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthCheckResponse returns the liveness response struct
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
