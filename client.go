package mailersend

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Client is the MailerSend API client. It owns the pooled HTTP session,
// injects auth headers and retries transient failures transparently. All
// API areas are reachable through the service fields. A Client is safe
// for concurrent use.
type Client struct {
	http    *resty.Client
	logger  zerolog.Logger
	limiter *rate.Limiter
	baseURL string

	Emails            *EmailsService
	Domains           *DomainsService
	Tokens            *TokensService
	Users             *UsersService
	Webhooks          *WebhooksService
	SMS               *SMSService
	Activity          *ActivityService
	Analytics         *AnalyticsService
	Messages          *MessagesService
	Templates         *TemplatesService
	Schedules         *SchedulesService
	Recipients        *RecipientsService
	EmailVerification *EmailVerificationService
	Quota             *QuotaService
}

// New creates a Client. The API key is resolved from WithAPIKey first and
// the MAILERSEND_API_KEY environment variable second; without either,
// ErrMissingAPIKey is returned before any network activity.
func New(opts ...Option) (*Client, error) {
	cfg := &config{
		baseURL:    DefaultBaseURL,
		userAgent:  defaultUserAgent(),
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv(APIKeyEnvVar)
	}

	if cfg.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	logger := newLogger(cfg)

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.baseURL, "/")).
		SetTimeout(cfg.timeout).
		SetRetryCount(cfg.maxRetries).
		SetRetryWaitTime(retryWaitMin).
		SetRetryMaxWaitTime(retryWaitMax).
		AddRetryCondition(shouldRetry).
		SetAuthToken(cfg.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.userAgent)

	if cfg.transport != nil {
		httpClient.SetTransport(cfg.transport)
	}

	c := &Client{
		http:    httpClient,
		logger:  logger,
		baseURL: strings.TrimSuffix(cfg.baseURL, "/"),
	}

	if cfg.rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.rps), 1)
	}

	c.Emails = &EmailsService{client: c}
	c.Domains = &DomainsService{client: c}
	c.Tokens = &TokensService{client: c}
	c.Users = &UsersService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	c.SMS = &SMSService{client: c}
	c.Activity = &ActivityService{client: c}
	c.Analytics = &AnalyticsService{client: c}
	c.Messages = &MessagesService{client: c}
	c.Templates = &TemplatesService{client: c}
	c.Schedules = &SchedulesService{client: c}
	c.Recipients = &RecipientsService{client: c}
	c.EmailVerification = &EmailVerificationService{client: c}
	c.Quota = &QuotaService{client: c}

	return c, nil
}

func newLogger(cfg *config) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.logger != nil {
		logger = *cfg.logger
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "mailersend").Logger()
	}

	if cfg.debug {
		return logger.Level(zerolog.DebugLevel)
	}

	return logger.Level(zerolog.InfoLevel)
}

// shouldRetry keeps the retry policy to transport failures plus the
// status codes 429, 500, 502, 503 and 504.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return true
	}

	switch resp.StatusCode() {
	case 429, 500, 502, 503, 504:
		return true
	}

	return false
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs one API call. On 2xx the response is wrapped in an
// APIResponse; on any other status an *APIError carrying the envelope is
// returned. Transport failures surface wrapped in ErrRequestFailed.
func (c *Client) Request(ctx context.Context, method, path string, params map[string]string, body any) (*APIResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
	}

	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	requestID := uuid.New().String()

	if c.logger.GetLevel() <= zerolog.DebugLevel {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Interface("params", redactQuery(params)).
			Interface("body", redactBody(body)).
			Msg("request start")
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)

	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request done")

	envelope := newAPIResponse(resp, requestID)

	if resp.IsSuccess() {
		return envelope, nil
	}

	apiErr := newAPIError(resp, envelope)

	c.logger.Warn().
		Str("method", method).
		Str("path", path).
		Str("request_id", apiErr.RequestID).
		Int("status", apiErr.StatusCode).
		Str("error", redactString(apiErr.Message)).
		Msg("API error")

	return nil, apiErr
}

func newAPIError(resp *resty.Response, envelope *APIResponse) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.StatusCode(), resp.Body()),
		RequestID:  envelope.RequestID(),
		Response:   envelope,
	}

	if seconds, ok := envelope.RetryAfter(); ok {
		apiErr.RetryAfter = seconds
	}

	return apiErr
}

// errorMessage extracts a human-readable message from an error payload:
// the top-level "message" field, concatenated with a field-by-field
// summary of the "errors" map when present. Non-JSON bodies fall back to
// "Error <code>: <raw text>".
func errorMessage(statusCode int, body []byte) string {
	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		if len(payload.Errors) == 0 {
			return payload.Message
		}

		fields := make([]string, 0, len(payload.Errors))
		for field := range payload.Errors {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		details := make([]string, 0, len(fields))
		for _, field := range fields {
			details = append(details, field+": "+strings.Join(payload.Errors[field], ", "))
		}

		return payload.Message + ": " + strings.Join(details, "; ")
	}

	return fmt.Sprintf("Error %d: %s", statusCode, string(body))
}
