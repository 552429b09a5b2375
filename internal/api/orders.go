package api

import (
	"context"
	"net/http"
)

type OrdersClient struct{ c *Client }

func NewOrdersClient(c *Client) *OrdersClient { return &OrdersClient{c: c} }

func (oc *OrdersClient) Create(ctx context.Context, req CreateOrderRequest) (Order, error) {
	return inEnvelope[Order](ctx, oc.c, http.MethodPost, "/api/orders", nil, req)
}

func (oc *OrdersClient) Get(ctx context.Context, id string) (Order, error) {
	return inEnvelope[Order](ctx, oc.c, http.MethodGet, "/api/orders/"+id, nil, nil)
}

func (oc *OrdersClient) List(ctx context.Context) ([]Order, error) {
	return inEnvelope[[]Order](ctx, oc.c, http.MethodGet, "/api/orders", nil, nil)
}
