package model

// ErrorResponse contains error information returned by the exposure API
// on a non-2xx status.
type ErrorResponse struct {
	HTTPCode int    `json:"httpCode"`
	Message  string `json:"message"`
}
