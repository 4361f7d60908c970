// Package client provides the HTTP pipeline that sends document database
// requests, with support for logging and diagnostics.
//
// The pipeline is the single consumer of the docstore options layer:
// it calls Populate exactly once per logical operation, before transmission.
package client

import (
	"github.com/go-resty/resty/v2"
	"github.com/jonboulle/clockwork"

	"github.com/keboola/go-docstore/internal/pkg/log"
	"github.com/keboola/go-docstore/internal/pkg/utils/errors"
	"github.com/keboola/go-docstore/internal/pkg/validator"
	"github.com/keboola/go-docstore/pkg/request"
)

type Config struct {
	userAgent string
	logger    log.Logger
	clock     clockwork.Clock
}

type Option func(c *Config)

func WithUserAgent(v string) Option {
	return func(c *Config) {
		c.userAgent = v
	}
}

func WithLogger(v log.Logger) Option {
	return func(c *Config) {
		c.logger = v
	}
}

// WithClock replaces the wall clock, for tests.
func WithClock(v clockwork.Clock) Option {
	return func(c *Config) {
		c.clock = v
	}
}

// Client is the sending pipeline, it wraps a resty HTTP client.
// Retry policy and authentication are the caller's concern,
// the pipeline performs a single attempt.
type Client struct {
	resty  *resty.Client
	logger log.Logger
	clock  clockwork.Clock
}

func New(baseURL string, opts ...Option) (*Client, error) {
	// Apply options
	conf := Config{
		userAgent: "keboola-go-docstore",
		logger:    log.NewNopLogger(),
		clock:     clockwork.NewRealClock(),
	}
	for _, o := range opts {
		o(&conf)
	}

	if err := validator.Validate(baseURL, "required,url", "baseUrl"); err != nil {
		return nil, errors.PrefixError(err, "invalid client configuration")
	}

	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetHeader(request.HeaderUserAgent, conf.userAgent)

	return &Client{resty: r, logger: conf.logger, clock: conf.clock}, nil
}

// RestyClient returns the wrapped client, for tests and advanced tuning.
func (c *Client) RestyClient() *resty.Client {
	return c.resty
}
