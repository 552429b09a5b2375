package api

import (
	"context"
	"net/http"
)

type PaymentsClient struct{ c *Client }

func NewPaymentsClient(c *Client) *PaymentsClient { return &PaymentsClient{c: c} }

// CreateIndirect starts a hosted payment flow. The returned payment may
// carry a payment_link the caller is expected to hand to the user.
func (pc *PaymentsClient) CreateIndirect(ctx context.Context, req PaymentRequest) (Payment, error) {
	return inEnvelope[Payment](ctx, pc.c, http.MethodPost, "/api/indirect_payment", nil, req)
}

// Verify fetches the current state of a transaction. It is a single probe:
// no retry lives here, the caller decides when to ask again.
func (pc *PaymentsClient) Verify(ctx context.Context, transactionID string) (Payment, error) {
	return inEnvelope[Payment](ctx, pc.c, http.MethodGet, "/api/verify_payment/"+transactionID, nil, nil)
}

func (pc *PaymentsClient) List(ctx context.Context) ([]Payment, error) {
	return inEnvelope[[]Payment](ctx, pc.c, http.MethodGet, "/api/payments", nil, nil)
}
