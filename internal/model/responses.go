package model

// MessageResponse is the {"message": ...} body used by the greeting and
// in-memory endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
