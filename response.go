package mailersend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIResponse is the uniform envelope around one API response: the decoded
// JSON payload plus headers, status code, the request correlation ID and
// the rate-limit counter. It is immutable after construction.
type APIResponse struct {
	data       any
	raw        []byte
	headers    http.Header
	statusCode int
	requestID  string

	quotaRemaining int
	hasQuota       bool
}

func newAPIResponse(resp *resty.Response, fallbackRequestID string) *APIResponse {
	raw := resp.Body()

	var data any
	if len(raw) > 0 {
		// Non-JSON payloads leave data nil; the raw bytes stay
		// reachable through Unmarshal.
		_ = json.Unmarshal(raw, &data)
	}

	env := &APIResponse{
		data:       data,
		raw:        raw,
		headers:    resp.Header(),
		statusCode: resp.StatusCode(),
		requestID:  resp.Header().Get(headerRequestID),
	}

	if env.requestID == "" {
		env.requestID = fallbackRequestID
	}

	if v := resp.Header().Get(headerQuotaRemaining); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			env.quotaRemaining = n
			env.hasQuota = true
		}
	}

	return env
}

// Get resolves key against the payload first and the envelope's own
// fields (data, headers, status_code, request_id, rate_limit_remaining,
// success) second. The payload always wins on collision. An unresolvable
// key fails with ErrKeyNotFound.
func (r *APIResponse) Get(key string) (any, error) {
	if v, ok := r.bodyLookup(key); ok {
		return v, nil
	}

	if v, ok := r.metaLookup(key); ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// Field resolves key against the payload only, failing with
// ErrFieldNotFound when absent. Envelope metadata is never reachable
// through Field, so a payload field can not be shadowed.
func (r *APIResponse) Field(key string) (any, error) {
	if v, ok := r.bodyLookup(key); ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, key)
}

// Has reports whether key is resolvable through the Get lookup chain.
func (r *APIResponse) Has(key string) bool {
	if _, ok := r.bodyLookup(key); ok {
		return true
	}

	_, ok := r.metaLookup(key)

	return ok
}

func (r *APIResponse) bodyLookup(key string) (any, bool) {
	m, ok := r.data.(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := m[key]

	return v, ok
}

func (r *APIResponse) metaLookup(key string) (any, bool) {
	switch key {
	case "data":
		return r.data, true
	case "headers":
		return r.headers, true
	case "status_code":
		return r.statusCode, true
	case "request_id":
		return r.requestID, true
	case "rate_limit_remaining":
		if r.hasQuota {
			return r.quotaRemaining, true
		}

		return nil, true
	case "success":
		return r.Success(), true
	}

	return nil, false
}

// Data returns the decoded payload: a map, a slice, or nil.
func (r *APIResponse) Data() any {
	return r.data
}

// Unmarshal decodes the raw payload into v, typically a typed response
// model.
func (r *APIResponse) Unmarshal(v any) error {
	if len(r.raw) == 0 {
		return nil
	}

	return json.Unmarshal(r.raw, v)
}

func (r *APIResponse) StatusCode() int {
	return r.statusCode
}

func (r *APIResponse) Success() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

func (r *APIResponse) Headers() http.Header {
	return r.headers
}

// Header returns a header value by name, case-insensitively. Underscores
// are accepted in place of dashes, so Header("x_request_id") reads the
// x-request-id header.
func (r *APIResponse) Header(name string) string {
	return r.headers.Get(strings.ReplaceAll(name, "_", "-"))
}

// RequestID returns the correlation ID from the x-request-id header, or
// the client-generated one when the server did not send it.
func (r *APIResponse) RequestID() string {
	return r.requestID
}

// RateLimitRemaining returns the counter parsed from x-apiquota-remaining.
func (r *APIResponse) RateLimitRemaining() (int, bool) {
	return r.quotaRemaining, r.hasQuota
}

// RetryAfter parses the Retry-After header as whole seconds. It reports
// false for absent or unparsable values and never fails.
func (r *APIResponse) RetryAfter() (int, bool) {
	v := r.headers.Get(headerRetryAfter)
	if v == "" {
		return 0, false
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}

	return seconds, true
}

// ToMap flattens the envelope into a plain mapping.
func (r *APIResponse) ToMap() map[string]any {
	headers := make(map[string]string, len(r.headers))
	for name := range r.headers {
		headers[name] = r.headers.Get(name)
	}

	var quota any
	if r.hasQuota {
		quota = r.quotaRemaining
	}

	return map[string]any{
		"data":                 r.data,
		"headers":              headers,
		"status_code":          r.statusCode,
		"request_id":           r.requestID,
		"rate_limit_remaining": quota,
		"success":              r.Success(),
	}
}

// ToJSON serializes ToMap. A non-empty indent pretty-prints.
func (r *APIResponse) ToJSON(indent string) ([]byte, error) {
	if indent != "" {
		return json.MarshalIndent(r.ToMap(), "", indent)
	}

	return json.Marshal(r.ToMap())
}
