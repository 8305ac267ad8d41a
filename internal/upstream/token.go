package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"venuegate/internal/shared/apperrors"
	"venuegate/internal/shared/config"

	"golang.org/x/sync/singleflight"
)

// MockToken is the sentinel credential used when the provider is mocked or
// unconfigured. No network access happens in that mode.
const MockToken = "mock-token"

// refreshMargin keeps a credential from being used close to its expiry.
const refreshMargin = 60 * time.Second

const defaultTokenTTL = 3600 * time.Second

// TokenCache obtains and caches the provider access token. Concurrent
// callers during a refresh share a single in-flight exchange.
type TokenCache struct {
	cfg config.RollerConfig
	hc  *http.Client
	now func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time

	group singleflight.Group
}

func NewTokenCache(cfg config.RollerConfig, hc *http.Client) *TokenCache {
	return &TokenCache{
		cfg: cfg,
		hc:  hc,
		now: time.Now,
	}
}

// Token returns a credential valid for at least refreshMargin. A cached
// value is returned without network access; otherwise a single exchange is
// performed no matter how many callers arrive at once. A failed exchange is
// never cached.
func (tc *TokenCache) Token(ctx context.Context) (string, error) {
	if tc.cfg.Mock || !tc.cfg.Configured() {
		return MockToken, nil
	}

	if token, ok := tc.cached(); ok {
		return token, nil
	}

	v, err, _ := tc.group.Do("token", func() (any, error) {
		// another caller may have finished a refresh while we queued
		if token, ok := tc.cached(); ok {
			return token, nil
		}

		token, expiry, err := tc.exchange(ctx)
		if err != nil {
			return "", &apperrors.AuthError{Err: err}
		}

		tc.mu.Lock()
		tc.token = token
		tc.expiry = expiry
		tc.mu.Unlock()
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (tc *TokenCache) cached() (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.token != "" && tc.now().Before(tc.expiry.Add(-refreshMargin)) {
		return tc.token, true
	}
	return "", false
}

// exchange performs the OAuth2 client-credentials grant.
func (tc *TokenCache) exchange(ctx context.Context) (string, time.Time, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", tc.cfg.ClientID)
	form.Set("client_secret", tc.cfg.ClientSecret)
	if tc.cfg.Audience != "" {
		form.Set("audience", tc.cfg.Audience)
	}

	tokenURL := tc.cfg.BaseURL + tc.cfg.TokenPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := tc.hc.Do(req)
	if err != nil {
		return "", time.Time{}, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", time.Time{}, err
	}
	if res.StatusCode >= 400 {
		return "", time.Time{}, fmt.Errorf("token exchange failed (status=%d)", res.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return "", time.Time{}, fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("token response missing access_token")
	}

	ttl := defaultTokenTTL
	if payload.ExpiresIn > 0 {
		ttl = time.Duration(payload.ExpiresIn) * time.Second
	}
	return payload.AccessToken, tc.now().Add(ttl), nil
}
