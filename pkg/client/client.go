package client

import (
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kuverta/kuverta-go/pkg/tokenstore"
)

// Client is the Kuverta SDK entry point.
type Client struct {
	cfg        Config
	httpClient *http.Client
	store      tokenstore.Store
	logger     *zap.Logger
	limiter    *rate.Limiter

	// serializes token refresh so concurrent callers trigger one fetch
	mu sync.Mutex
}

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithHTTPClient sets a custom http.Client, replacing the default 30 second
// timeout client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = hc
		return nil
	}
}

// WithStore replaces the in-memory token store, e.g. with tokenstore.Redis
// so several processes share one token.
func WithStore(s tokenstore.Store) Option {
	return func(c *Client) error {
		c.store = s
		return nil
	}
}

// WithLogger attaches a zap logger. Requests log at debug level and token
// refreshes at info level; credentials and token values are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst. The limiter waits rather than failing, honouring the request
// context's deadline.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) error {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

// New creates a Client. Credentials are not checked here; an incomplete
// Config surfaces as a *ConfigError from the first operation.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		cfg:        cfg.withDefaults(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      tokenstore.NewMemory(),
		logger:     zap.NewNop(),
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Useful in tests and program init.
func MustNew(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// BaseURL returns the normalized base URL the client dispatches against.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}
