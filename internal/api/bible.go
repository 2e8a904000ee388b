package api

import (
	"context"
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// TodayVerse returns today's scripture passage, nil when none is scheduled
func (c *Client) TodayVerse(ctx context.Context) Result[*domain.BibleVerse] {
	r := do(ctx, c, call{
		endpoint: EndpointBibleToday,
		method:   http.MethodGet,
		path:     PathBibleToday,
	}, func(v *domain.BibleVerse) bool { return v.Content != "" || v.Reference != "" })
	return mapResult(r, func(v domain.BibleVerse) *domain.BibleVerse { return &v })
}
