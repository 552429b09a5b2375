package api

import (
	"context"
	"net/http"
)

// AdminClient covers the moderation dashboards. Every call requires an
// admin bearer token; the backend enforces the role.
type AdminClient struct{ c *Client }

func NewAdminClient(c *Client) *AdminClient { return &AdminClient{c: c} }

func (ac *AdminClient) Dashboard(ctx context.Context) (DashboardMetrics, error) {
	return inEnvelope[DashboardMetrics](ctx, ac.c, http.MethodGet, "/api/admin/dashboard", nil, nil)
}

func (ac *AdminClient) Orders(ctx context.Context) ([]Order, error) {
	return inEnvelope[[]Order](ctx, ac.c, http.MethodGet, "/api/admin/orders", nil, nil)
}

func (ac *AdminClient) PendingProducts(ctx context.Context) ([]Product, error) {
	return inEnvelope[[]Product](ctx, ac.c, http.MethodGet, "/api/admin/products/pending", nil, nil)
}

func (ac *AdminClient) SalesTrends(ctx context.Context) ([]SalesTrend, error) {
	return inEnvelope[[]SalesTrend](ctx, ac.c, http.MethodGet, "/api/admin/sales-trends", nil, nil)
}

func (ac *AdminClient) BuyerConversion(ctx context.Context) ([]BuyerConversion, error) {
	return inEnvelope[[]BuyerConversion](ctx, ac.c, http.MethodGet, "/api/admin/buyer-conversion", nil, nil)
}

func (ac *AdminClient) TopCategories(ctx context.Context) ([]CategoryStat, error) {
	return inEnvelope[[]CategoryStat](ctx, ac.c, http.MethodGet, "/api/admin/top-categories", nil, nil)
}

func (ac *AdminClient) RecentActivities(ctx context.Context) ([]Activity, error) {
	return inEnvelope[[]Activity](ctx, ac.c, http.MethodGet, "/api/admin/recent-activities", nil, nil)
}

func (ac *AdminClient) ApproveProduct(ctx context.Context, id string) error {
	return ac.c.doJSON(ctx, http.MethodPost, "/api/admin/products/"+id+"/approve", nil, nil, nil)
}

func (ac *AdminClient) RejectProduct(ctx context.Context, id string) error {
	return ac.c.doJSON(ctx, http.MethodPut, "/api/admin/products/"+id+"/reject", nil, nil, nil)
}
