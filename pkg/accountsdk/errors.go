package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is an error reported by the service. The server writes these and
// the client parses them back, so both sides compare equal under errors.Is.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Is matches on status code and message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Message == t.Message
}

// WriteError writes e as {"error": message}.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: e.Message})
}

// NewAPIError builds an ad-hoc APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

var (
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body",
	}

	ErrMissingFields = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Name, email and password are required",
	}

	ErrInvalidEmail = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid email address",
	}

	ErrCountryIDRequired = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "countryId is required",
	}

	// ErrFavoriteExists is a request error rather than a silent no-op.
	ErrFavoriteExists = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Country already in favorites",
	}

	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Authentication required",
	}

	ErrAccessDenied = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    "Access denied",
	}

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. It keeps the 404 status existing clients expect.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "Invalid email or password",
	}

	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "User not found",
	}

	ErrFavoriteNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "Country not in favorites",
	}

	ErrEmailTaken = &APIError{
		StatusCode: http.StatusConflict,
		Message:    "Email already registered",
	}

	ErrTooManyRequests = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Message:    "Too many requests. Please try again later.",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
)

// parseErrorResponse converts a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		// 401s carry the verifier's reason; collapse them so callers can
		// match a single sentinel.
		if resp.StatusCode == http.StatusUnauthorized {
			return &APIError{StatusCode: resp.StatusCode, Message: ErrUnauthorized.Message}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
