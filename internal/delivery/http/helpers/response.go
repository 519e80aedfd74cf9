package helpers

import (
	"encoding/json"
	"net/http"
)

// Client-facing error messages. Internal detail is logged, never returned.
const (
	MsgInvalidEmail       = "Invalid email format"
	MsgDuplicateEmail     = "Email already registered"
	MsgSignupFailed       = "Something went wrong. Please try again."
	MsgUnauthorized       = "Unauthorized"
	MsgFetchSignupsFailed = "Failed to fetch signups"
	MsgTestEmailFailed    = "Failed to send test email"
	MsgTooManyRequests    = "Too many requests"
	MsgInternalError      = "Internal server error"
	MsgNotFound           = "Not found"
)

// ErrorResponse is the body of every error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes an ErrorResponse with the given status and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
