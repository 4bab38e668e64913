package spendlysdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field of error responses.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeDuplicateUsername  = "duplicate_username"
	ErrCodeNotFound           = "not_found"
	ErrCodeInsufficientFunds  = "insufficient_funds"
	ErrCodeMFARequired        = "mfa_required"
	ErrCodeForbidden          = "forbidden"
	ErrCodeInvalidToken       = "invalid_token"
	ErrCodeServerError        = "server_error"
	ErrCodeRateLimited        = "rate_limit_exceeded"
)

// APIError is the JSON error envelope every endpoint uses.
type APIError struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`

	// Status is the HTTP status the error arrived with. Not serialized.
	Status int `json:"-"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the standard error envelope with the given status.
func WriteError(w http.ResponseWriter, status int, code, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{Code: code, Description: description})
}

// parseAPIError decodes an error envelope from a non-2xx response body.
func parseAPIError(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
		return &APIError{Code: ErrCodeServerError, Description: http.StatusText(status), Status: status}
	}
	apiErr.Status = status
	return &apiErr
}
