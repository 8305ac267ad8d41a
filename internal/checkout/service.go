package checkout

import (
	"context"
	"fmt"

	"venuegate/internal/upstream"
)

// Service requests hosted payment sessions for holds. When the provider
// cannot answer, a deterministic link derived from the hold id stands in.
type Service interface {
	CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)
}

type service struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) Service {
	return &service{client: client}
}

func (s *service) CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error) {
	return upstream.LiveOrSynthetic(ctx, s.client, "create_checkout_link",
		func(ctx context.Context) (*CheckoutLink, error) {
			return s.createSession(ctx, req)
		},
		func() *CheckoutLink {
			return &CheckoutLink{
				PayLink: s.client.CheckoutFallbackBase() + "/" + req.HoldID,
			}
		},
	)
}

func (s *service) createSession(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error) {
	payload := map[string]any{
		"hold_id":    req.HoldID,
		"return_url": req.ReturnURL,
		"cancel_url": req.CancelURL,
	}

	var raw map[string]any
	if err := s.client.PostJSON(ctx, "/api/v1/checkout/sessions", payload, &raw); err != nil {
		return nil, err
	}

	link, ok := upstream.PickString(raw, upstream.AliasPayLink)
	if !ok {
		return nil, fmt.Errorf("checkout session response missing pay link")
	}
	return &CheckoutLink{PayLink: link}, nil
}
