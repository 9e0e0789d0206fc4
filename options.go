package mailersend

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

const (
	DefaultBaseURL    = "https://api.mailersend.com/v1"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3

	// retryWaitMin is the initial backoff between retry attempts.
	retryWaitMin = 300 * time.Millisecond
	retryWaitMax = 10 * time.Second

	// APIKeyEnvVar is the fallback source for the API key when no
	// WithAPIKey option is given.
	APIKeyEnvVar = "MAILERSEND_API_KEY"

	headerRequestID      = "x-request-id"
	headerQuotaRemaining = "x-apiquota-remaining"
	headerRetryAfter     = "Retry-After"
)

func defaultUserAgent() string {
	return fmt.Sprintf("mailersend-go/%s (go/%s; %s %s)",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

type config struct {
	apiKey     string
	baseURL    string
	userAgent  string
	timeout    time.Duration
	maxRetries int
	debug      bool
	logger     *zerolog.Logger
	transport  http.RoundTripper
	rps        float64
}

type Option func(*config)

// WithAPIKey sets the API key explicitly. When omitted the key is read
// from the MAILERSEND_API_KEY environment variable.
func WithAPIKey(apiKey string) Option {
	return func(c *config) {
		c.apiKey = apiKey
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of transparent retries applied to
// transport failures and to responses with status 429, 500, 502, 503
// or 504.
func WithMaxRetries(maxRetries int) Option {
	return func(c *config) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}
	}
}

// WithDebug lowers the client logger to debug level, emitting one line
// per request with redacted parameters.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}

// WithLogger supplies the logger the client writes to. Without it the
// client logs to stderr.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = &logger
	}
}

// WithHTTPTransport replaces the underlying round tripper, mainly for
// tests and custom connection pooling.
func WithHTTPTransport(transport http.RoundTripper) Option {
	return func(c *config) {
		c.transport = transport
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *config) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRequestsPerSecond installs a client-side throttle so sequential
// callers stay under the API quota. Zero disables throttling.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *config) {
		c.rps = rps
	}
}
