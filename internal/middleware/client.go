package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

var (
	// ErrTransport is returned when the middleware could not be reached at all.
	ErrTransport = errors.New("middleware unreachable")
	// ErrMalformed is returned when a response body does not match the expected shape.
	ErrMalformed = errors.New("malformed middleware response")
)

// StatusError is returned for any non-2xx middleware response.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received unexpected status %q from %s", e.Status, e.URL)
}

type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	newBackOff func() backoff.BackOff
}

type Option func(*Client)

// WithRetry retries transport failures with exponential backoff for up to maxElapsed.
// A zero value keeps the default of a single attempt.
func WithRetry(maxElapsed time.Duration) Option {
	return func(c *Client) {
		if maxElapsed <= 0 {
			return
		}
		c.newBackOff = func() backoff.BackOff {
			return newExponentialBackoffConfig(maxElapsed)
		}
	}
}

func New(logger *logrus.Logger, httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		logger:     logger,
		httpClient: httpClient,
		newBackOff: func() backoff.BackOff {
			return &backoff.StopBackOff{}
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET to baseURL+path with the given query and decodes the JSON body into out.
// It returns the resolved request URL, also on failure.
func (c *Client) Get(ctx context.Context, baseURL, path string, query url.Values, out any) (string, error) {
	target := ResolveURL(baseURL, path, query)
	logger := c.logger.WithContext(ctx).WithField("url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return target, fmt.Errorf("create new http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.doRequestWithRetry(req, logger)
	if err != nil {
		requestsTotal.WithLabelValues("transport_error").Inc()
		return target, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()
	requestDuration.Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.WithFields(logrus.Fields{
			"status":   resp.StatusCode,
			"response": string(body),
		}).Debug("Middleware responded with unexpected status code")
		return target, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        target,
		}
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return target, fmt.Errorf("%w: decode response body: %w", ErrMalformed, err)
	}

	return target, nil
}

// ResolveURL joins the node URL and the endpoint path, tolerating a trailing slash on
// either side, and appends the encoded query.
func ResolveURL(baseURL, path string, query url.Values) string {
	target := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (c *Client) doRequestWithRetry(req *http.Request, logger *logrus.Entry) (*http.Response, error) {
	bk := backoff.WithContext(c.newBackOff(), req.Context())
	resp, err := backoff.RetryWithData[*http.Response](func() (*http.Response, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, backoff.Permanent(fmt.Errorf("could not make http call: %w", err))
			}
			logger.WithError(err).Warn("Failed to make http request")
			return nil, fmt.Errorf("http request failed: %w", err)
		}
		return resp, nil
	}, bk)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func newExponentialBackoffConfig(maxElapsed time.Duration) *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(maxElapsed),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
