package api

import (
	"context"
	"net/http"
)

type UsersClient struct{ c *Client }

func NewUsersClient(c *Client) *UsersClient { return &UsersClient{c: c} }

func (uc *UsersClient) Register(ctx context.Context, req RegisterRequest) (LoginResponse, error) {
	return inEnvelope[LoginResponse](ctx, uc.c, http.MethodPost, "/api/users", nil, req)
}

func (uc *UsersClient) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	return inEnvelope[LoginResponse](ctx, uc.c, http.MethodPost, "/api/users/login", nil, req)
}
