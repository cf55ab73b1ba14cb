// internal/dealsource/client.go
package dealsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/dealboard/internal/deal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DefaultEndpoint is where the pricing backend serves deals locally.
	DefaultEndpoint = "http://127.0.0.1:8000/deals"

	maxBodySize = 8 << 20
)

// Options configures a Client. Zero values mean: default endpoint,
// no timeout, a single attempt.
type Options struct {
	Endpoint      string
	MinProfit     float64
	Timeout       time.Duration
	Retries       int
	RetryInterval time.Duration
	HTTPClient    *http.Client
}

// Client fetches the current deal list from the pricing backend.
type Client struct {
	url           string
	httpClient    *http.Client
	retries       int
	retryInterval time.Duration
	logger        *zap.Logger
}

// New creates a deals client.
func New(opts Options, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint scheme %q", u.Scheme)
	}
	if opts.MinProfit > 0 {
		q := u.Query()
		q.Set("min_profit", strconv.FormatFloat(opts.MinProfit, 'f', -1, 64))
		u.RawQuery = q.Encode()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	if opts.Retries < 0 {
		return nil, errors.New("retries must not be negative")
	}

	return &Client{
		url:           u.String(),
		httpClient:    httpClient,
		retries:       opts.Retries,
		retryInterval: opts.RetryInterval,
		logger:        logger.Named("dealsource"),
	}, nil
}

// URL returns the fully resolved request URL.
func (c *Client) URL() string {
	return c.url
}

// Fetch requests the deal list. Errors are one of *TransportFailure,
// *FetchFailure or *ParseFailure.
func (c *Client) Fetch(ctx context.Context) ([]deal.Deal, error) {
	if c.retries == 0 {
		return c.fetchOnce(ctx)
	}

	b := backoff.NewExponentialBackOff()
	if c.retryInterval > 0 {
		b.InitialInterval = c.retryInterval
	}

	operation := func() ([]deal.Deal, error) {
		deals, err := c.fetchOnce(ctx)
		if err != nil && !retryable(ctx, err) {
			return nil, backoff.Permanent(err)
		}
		return deals, err
	}

	deals, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(c.retries+1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Warn("Fetch failed, retrying",
				zap.Error(err),
				zap.Duration("next", next))
		}),
	)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Unwrap()
		}
		if !isFailure(err) {
			// context errors surfaced by the retry loop itself
			err = &TransportFailure{Err: err}
		}
		return nil, err
	}
	return deals, nil
}

func (c *Client) fetchOnce(ctx context.Context) ([]deal.Deal, error) {
	start := time.Now()
	c.logger.Debug("Fetching deals", zap.String("url", c.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &TransportFailure{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Deals request failed", zap.Error(err))
		return nil, &TransportFailure{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Deals request returned non-success status",
			zap.Int("status", resp.StatusCode))
		return nil, &FetchFailure{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &TransportFailure{Err: err}
	}
	if len(body) > maxBodySize {
		c.logger.Warn("Deals response exceeds size limit", zap.Int("limit", maxBodySize))
		return nil, &ParseFailure{Err: ErrBodyTooLarge}
	}

	var deals []deal.Deal
	if err := json.Unmarshal(body, &deals); err != nil {
		c.logger.Warn("Failed to decode deals", zap.Error(err))
		return nil, &ParseFailure{Err: err}
	}
	if deals == nil {
		deals = []deal.Deal{}
	}

	c.logger.Debug("Deals fetched",
		zap.Int("count", len(deals)),
		zap.Duration("took", time.Since(start)))
	return deals, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var transport *TransportFailure
	if errors.As(err, &transport) {
		return true
	}
	var fetch *FetchFailure
	if errors.As(err, &fetch) {
		return fetch.Temporary()
	}
	return false
}

func isFailure(err error) bool {
	var (
		transport *TransportFailure
		fetch     *FetchFailure
		parse     *ParseFailure
	)
	return errors.As(err, &transport) || errors.As(err, &fetch) || errors.As(err, &parse)
}
