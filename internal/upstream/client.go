// Package upstream is the HTTP client for the Roller booking provider.
// It owns the credential cache, the tolerant response-field mapping, and
// the live-or-synthetic strategy every upstream-facing component uses.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"venuegate/internal/shared/config"
	"venuegate/pkg/logger"
)

// Client is a minimal Roller API client. All calls carry a bearer token
// obtained from the credential cache.
type Client struct {
	cfg    config.RollerConfig
	hc     *http.Client
	tokens *TokenCache
	log    *logger.Logger
}

func New(cfg config.RollerConfig, log *logger.Logger) *Client {
	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	if cfg.HTTPTimeout <= 0 {
		hc.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:    cfg,
		hc:     hc,
		tokens: NewTokenCache(cfg, hc),
		log:    log,
	}
}

// Live reports whether live upstream calls should be attempted.
func (c *Client) Live() bool { return c.cfg.Live() }

// Strict reports whether upstream failures surface as errors instead of
// synthetic fallbacks.
func (c *Client) Strict() bool { return c.cfg.StrictErrors }

// VenueID returns the configured default venue identifier.
func (c *Client) VenueID() string { return c.cfg.VenueID }

// CheckoutFallbackBase returns the base URL for synthetic checkout links.
func (c *Client) CheckoutFallbackBase() string { return c.cfg.CheckoutFallbackBase }

// Tokens exposes the credential cache.
func (c *Client) Tokens() *TokenCache { return c.tokens }

// GetJSON performs an authenticated GET and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON performs an authenticated POST with a JSON body and decodes the
// response into out.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= 400 {
		// surface the provider's message field when present
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(b, &apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (status=%d)", method, path, apiErr.Message, res.StatusCode)
		}
		return fmt.Errorf("%s %s failed (status=%d)", method, path, res.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}
