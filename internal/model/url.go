package model

// ShortenRequest is the body of POST /shorten.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse is the success body of POST /shorten.
type ShortenResponse struct {
	ShortURL string `json:"short_url"`
}

// ShortenResult is the outcome of a successful submission, kept by the form
// until it is replaced.
type ShortenResult struct {
	ShortURL string
}

// DecodeResponse is the success body of GET /decode/{code}.
type DecodeResponse struct {
	OriginalURL string `json:"original_url"`
}
