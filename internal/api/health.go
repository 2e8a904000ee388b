package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// Ping checks that the backend answers its health endpoint.
// It is the only method that reports failure as an error.
func (c *Client) Ping(ctx context.Context) error {
	r := do[struct{}](ctx, c, call{
		endpoint: EndpointHealth,
		method:   http.MethodGet,
		path:     PathHealth,
	}, nil)
	if r.OK {
		return nil
	}
	if r.Status == 0 {
		return fmt.Errorf("%w: no response", domain.ErrBackendUnavailable)
	}
	return fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, r.Status)
}
