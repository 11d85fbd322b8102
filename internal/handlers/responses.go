package handlers

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status       string `json:"status"`
	Brand        string `json:"brand"`
	Testimonials int    `json:"testimonials"`
	Products     int    `json:"products"`
}
