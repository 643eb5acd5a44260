package types

// ApiError is the standard error payload returned by JSON endpoints.
type ApiError struct {
	Context map[string]string `json:"context,omitempty"`
	Message string            `json:"message"`
	Error   bool              `json:"error"`
}
