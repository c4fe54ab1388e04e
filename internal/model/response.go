package model

// ErrorResponse is the structured failure body returned by the backend.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Message string `json:"message"`
}
