package api

import (
	"context"
	"net/http"
	"net/url"
)

type ProductsClient struct{ c *Client }

func NewProductsClient(c *Client) *ProductsClient { return &ProductsClient{c: c} }

// List fetches the catalog, optionally filtered by category and/or seller.
func (pc *ProductsClient) List(ctx context.Context, category, sellerID string) ([]Product, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if sellerID != "" {
		q.Set("seller_id", sellerID)
	}
	return inEnvelope[[]Product](ctx, pc.c, http.MethodGet, "/api/products", q, nil)
}

func (pc *ProductsClient) Get(ctx context.Context, id string) (Product, error) {
	return inEnvelope[Product](ctx, pc.c, http.MethodGet, "/api/products/"+id, nil, nil)
}

func (pc *ProductsClient) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	return inEnvelope[Product](ctx, pc.c, http.MethodPost, "/api/products", nil, req)
}

func (pc *ProductsClient) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	return inEnvelope[Product](ctx, pc.c, http.MethodPut, "/api/products/"+id, nil, req)
}

func (pc *ProductsClient) Delete(ctx context.Context, id string) error {
	return pc.c.doJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, nil)
}
