package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError reports a non-2xx vendor response so adapters can treat
// "product not found" (404) differently from a vendor fault.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vendor returned %d for %s", e.Code, e.URL)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// VendorClient is the shared HTTP client for all vendor API adapters:
// one timeout policy, one User-Agent, a circuit breaker per client, and an
// optional redis-backed response cache. Adapters own nothing HTTP-shaped
// beyond building URLs and decoding payloads.
type VendorClient struct {
	httpClient *http.Client
	breaker    *Breaker
	cache      *VendorCache
	userAgent  string
}

func NewVendorClient(timeout time.Duration, userAgent string, cache *VendorCache) *VendorClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &VendorClient{
		httpClient: &http.Client{Timeout: timeout},
		breaker:    NewBreaker(DefaultBreakerConfig()),
		cache:      cache,
		userAgent:  userAgent,
	}
}

// GetJSON fetches url and decodes the JSON body into out. Responses are
// served from the cache when present; only 2xx bodies are cached. 404s
// count as breaker successes — the vendor answered, the product just
// isn't there.
func (c *VendorClient) GetJSON(ctx context.Context, url string, out any) error {
	return c.doJSON(ctx, http.MethodGet, url, nil, out)
}

// PostJSON sends payload as a JSON body and decodes the response into out.
// Used by vendors whose search endpoint takes POST (USDA FoodData Central).
func (c *VendorClient) PostJSON(ctx context.Context, url string, payload any, out any) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, url, reqBody, out)
}

func (c *VendorClient) doJSON(ctx context.Context, method, url string, reqBody []byte, out any) error {
	cacheKey := url
	if len(reqBody) > 0 {
		cacheKey = url + "|" + string(reqBody)
	}
	if body, ok := c.cache.Get(ctx, cacheKey); ok {
		return json.Unmarshal(body, out)
	}

	var body []byte
	var notFound *StatusError
	err := c.breaker.Execute(func() error {
		var rd io.Reader
		if len(reqBody) > 0 {
			rd = bytes.NewReader(reqBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rd)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if len(reqBody) > 0 {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("vendor unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			// The vendor answered; not a breaker failure.
			notFound = &StatusError{URL: url, Code: resp.StatusCode}
			return nil
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{URL: url, Code: resp.StatusCode}
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if notFound != nil {
		return notFound
	}

	c.cache.Set(ctx, cacheKey, body)
	return json.Unmarshal(body, out)
}
