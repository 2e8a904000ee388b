package api

import (
	"context"
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

type loginRequest struct {
	Cell string `json:"cell"`
	Name string `json:"name"`
}

type loginResponse struct {
	UserID string `json:"user_id"`
}

// Login authenticates by cell and name. The backend's session cookies are
// returned in Result.Cookies so they can be forwarded to the browser.
func (c *Client) Login(ctx context.Context, cell, name string) Result[domain.LoginResult] {
	r := do(ctx, c, call{
		endpoint: EndpointLogin,
		method:   http.MethodPost,
		path:     PathLogin,
		body:     loginRequest{Cell: cell, Name: name},
	}, func(v *loginResponse) bool { return v.UserID != "" })

	res := mapResult(r, func(v loginResponse) domain.LoginResult {
		return domain.LoginResult{Success: true, UserID: v.UserID}
	})
	if !res.OK {
		res.Value = domain.LoginResult{Success: false, Message: r.Message}
	}
	return res
}

// Logout ends the backend session. Value reports success.
func (c *Client) Logout(ctx context.Context) Result[bool] {
	r := do[struct{}](ctx, c, call{
		endpoint: EndpointLogout,
		method:   http.MethodPost,
		path:     PathLogout,
		body:     struct{}{},
	}, nil)
	return mapResult(r, func(struct{}) bool { return true })
}

// IsLoggedIn checks the session against the in-progress fruit endpoint
func (c *Client) IsLoggedIn(ctx context.Context) bool {
	r := do[struct{}](ctx, c, call{
		endpoint: EndpointSession,
		method:   http.MethodGet,
		path:     PathFruitProgress,
	}, nil)
	return r.OK
}
