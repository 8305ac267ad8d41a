package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venuegate/internal/shared/config"
	"venuegate/internal/upstream"
	"venuegate/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(cfg config.RollerConfig) Service {
	return NewService(upstream.New(cfg, logger.GetDefault()))
}

func TestCreateCheckoutLink_UnconfiguredBuildsDeterministicLink(t *testing.T) {
	svc := newTestService(config.RollerConfig{
		CheckoutFallbackBase: "https://checkout.roller.app/s",
	})

	link, err := svc.CreateCheckoutLink(context.Background(), CheckoutRequest{HoldID: "R1a2b3c"})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.roller.app/s/R1a2b3c", link.PayLink)

	// same hold, same link
	again, err := svc.CreateCheckoutLink(context.Background(), CheckoutRequest{HoldID: "R1a2b3c"})
	require.NoError(t, err)
	assert.Equal(t, link.PayLink, again.PayLink)
}

func TestCreateCheckoutLink_LiveSessionLinkPicked(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 3600})
	})
	mux.HandleFunc("/api/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "H-77", payload["hold_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{"checkoutUrl": "https://pay.example/cs_123"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := newTestService(config.RollerConfig{
		BaseURL:      srv.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenPath:    "/token",
		HTTPTimeout:  5 * time.Second,
	})

	link, err := svc.CreateCheckoutLink(context.Background(), CheckoutRequest{HoldID: "H-77"})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_123", link.PayLink)
}

func TestCreateCheckoutLink_SessionWithoutLinkFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 3600})
	})
	mux.HandleFunc("/api/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"session": "cs_123"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := newTestService(config.RollerConfig{
		BaseURL:              srv.URL,
		ClientID:             "client-id",
		ClientSecret:         "client-secret",
		TokenPath:            "/token",
		CheckoutFallbackBase: "https://checkout.roller.app/s",
		HTTPTimeout:          5 * time.Second,
	})

	link, err := svc.CreateCheckoutLink(context.Background(), CheckoutRequest{HoldID: "H-77"})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.roller.app/s/H-77", link.PayLink)
}
