package mailersend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingAPIKey = errors.New("mailersend: API key is required")

	ErrRequestFailed = errors.New("mailersend: request failed")

	// ErrAPI matches every error produced from a non-2xx API response.
	ErrAPI = errors.New("mailersend: API error")

	ErrAuthentication   = errors.New("mailersend: authentication failed")
	ErrResourceNotFound = errors.New("mailersend: resource not found")
	ErrRateLimited      = errors.New("mailersend: rate limit exceeded")
	ErrBadRequest       = errors.New("mailersend: bad request")
	ErrServer           = errors.New("mailersend: server error")

	// ErrValidation matches errors raised locally, before any network call.
	ErrValidation = errors.New("mailersend: validation failed")

	ErrKeyNotFound   = errors.New("mailersend: key not found in response")
	ErrFieldNotFound = errors.New("mailersend: field not found in response body")
)

// APIError is returned for every response outside the 2xx range. The
// originating envelope is attached so callers can inspect headers and the
// raw payload.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string

	// RetryAfter holds the parsed Retry-After header in seconds,
	// 0 when absent.
	RetryAfter int

	Response *APIResponse
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
	}

	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}

// Is maps the status code onto the package sentinel errors so that
// errors.Is(err, ErrRateLimited) and friends work.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrAuthentication:
		return e.StatusCode == 401
	case ErrResourceNotFound:
		return e.StatusCode == 404
	case ErrRateLimited:
		return e.StatusCode == 429
	case ErrBadRequest:
		return e.StatusCode >= 400 && e.StatusCode < 500 &&
			e.StatusCode != 401 && e.StatusCode != 404 && e.StatusCode != 429
	case ErrServer:
		return e.StatusCode >= 500 && e.StatusCode < 600
	}

	return false
}

// AsAPIError unwraps err into an *APIError when one is present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// FieldError describes a single failed field constraint.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// ValidationError is raised before any network call when a request object
// fails its field constraints or an operation receives unusable input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}

	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func errValidationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
