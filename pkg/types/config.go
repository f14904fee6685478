package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "orcid-works/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OpenAlexConfig holds settings for the OpenAlex source client.
type OpenAlexConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root (default https://api.openalex.org).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Email is sent as the mailto parameter on every request for polite
	// pool access.
	Email string `json:"email" yaml:"email"`

	// RateLimit is the sustained request rate per second (default 10).
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// Burst is the rate limiter bucket size (default 1).
	Burst int `json:"burst" yaml:"burst"`

	// MaxRetries is the number of times a 429 response is retried with
	// exponential backoff. Zero disables retries.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// Format is the output format: json or console.
	Format string `json:"format" yaml:"format"`

	// Output is the destination: stdout or stderr.
	Output string `json:"output" yaml:"output"`
}

// OutputFormat selects how harvested works are printed.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputORCID OutputFormat = "orcid"
)
