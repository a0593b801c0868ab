// Package upstream calls the academic-records API with bounded timeouts and
// retry-with-backoff.
package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/studentportal/portal/internal/entity"
	"github.com/studentportal/portal/pkg/logger"
)

// maxBodyBytes caps a single response; profile images are the largest payloads.
const maxBodyBytes = 16 << 20

type profile struct {
	policy Policy
	client *retryablehttp.Client
}

// Client -.
type Client struct {
	baseURL   string
	log       logger.Interface
	transport http.RoundTripper
	fallback  profile
	policies  map[Endpoint]Policy
	profiles  map[Endpoint]profile
}

// Option -.
type Option func(*Client)

// WithEndpointPolicy gives endpoint its own timeout and retry profile.
func WithEndpointPolicy(endpoint Endpoint, p Policy) Option {
	return func(c *Client) {
		c.policies[endpoint] = p
	}
}

// WithTransport replaces the HTTP transport, mainly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// New builds a client for baseURL. Endpoints without their own policy use def.
func New(baseURL string, def Policy, l logger.Interface, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      l,
		policies: map[Endpoint]Policy{},
		profiles: map[Endpoint]profile{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.fallback = c.newProfile(def)

	for endpoint, p := range c.policies {
		c.profiles[endpoint] = c.newProfile(p)
	}

	return c
}

func (c *Client) newProfile(p Policy) profile {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Timeout: p.Timeout, Transport: c.transport}
	rc.RetryMax = max(p.MaxRetries, 0)
	rc.RetryWaitMin = p.WaitMin
	rc.RetryWaitMax = p.WaitMax
	rc.Backoff = retryablehttp.DefaultBackoff
	rc.CheckRetry = retryPolicy
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = logger.RetryableHTTP(c.log)

	return profile{policy: p, client: rc}
}

// retryPolicy retries connection errors and 5xx. Every 4xx, 429 included,
// is returned on the first attempt.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *Client) profileFor(endpoint Endpoint) profile {
	if p, ok := c.profiles[endpoint]; ok {
		return p
	}

	return c.fallback
}

// PolicyFor returns the policy applied to endpoint.
func (c *Client) PolicyFor(endpoint Endpoint) Policy {
	return c.profileFor(endpoint).policy
}

// Fetch GETs path and returns the body. authToken is sent verbatim as the
// Authorization header. Every outcome is logged once.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint, path, authToken string) ([]byte, error) {
	p := c.profileFor(endpoint)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, p.policy.Ceiling())
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, c.fail(endpoint, authToken, start, newError(KindTransport, endpoint, 0, err))
	}

	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	req.Header.Set("Accept", "application/json, image/*;q=0.9, */*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}

		return nil, c.fail(endpoint, authToken, start, classify(endpoint, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

		return nil, c.fail(endpoint, authToken, start, statusError(endpoint, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.fail(endpoint, authToken, start, classify(endpoint, err))
	}

	elapsed := time.Since(start)
	recordCall(endpoint, "success", elapsed)
	c.log.Info("upstream request succeeded",
		"endpoint", string(endpoint),
		"status", resp.StatusCode,
		"token", entity.RedactToken(authToken),
		"bytes", len(body),
		"duration_ms", elapsed.Milliseconds(),
	)

	return body, nil
}

// FetchJSON fetches path and decodes the JSON body into out.
func (c *Client) FetchJSON(ctx context.Context, endpoint Endpoint, path, authToken string, out interface{}) error {
	body, err := c.Fetch(ctx, endpoint, path, authToken)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		e := newError(KindInvalidPayload, endpoint, http.StatusOK, err)
		c.log.Error(e, "endpoint", string(endpoint), "token", entity.RedactToken(authToken))

		return e
	}

	return nil
}

func (c *Client) fail(endpoint Endpoint, authToken string, start time.Time, e UpstreamError) error {
	elapsed := time.Since(start)
	recordCall(endpoint, e.Kind.String(), elapsed)
	c.log.Error(e,
		"endpoint", string(endpoint),
		"kind", e.Kind.String(),
		"status", e.Status,
		"token", entity.RedactToken(authToken),
		"duration_ms", elapsed.Milliseconds(),
	)

	return e
}
