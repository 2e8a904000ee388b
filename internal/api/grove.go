package api

import (
	"context"
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

type fruitsResponse struct {
	Fruits []domain.Fruit `json:"fruits"`
	Count  int            `json:"count"`
}

type cellsResponse struct {
	Cells []string `json:"cells"`
	Count int      `json:"count"`
}

type cellRequest struct {
	Cell string `json:"cell"`
}

func fruitsOf(v fruitsResponse) []domain.Fruit { return v.Fruits }

// MyFruits lists every fruit the user has grown
func (c *Client) MyFruits(ctx context.Context) Result[[]domain.Fruit] {
	r := do[fruitsResponse](ctx, c, call{
		endpoint: EndpointMyFruits,
		method:   http.MethodGet,
		path:     PathMyFruits,
	}, nil)
	res := mapResult(r, fruitsOf)
	res.Value = orEmpty(res.Value)
	return res
}

// Cells lists every cell name
func (c *Client) Cells(ctx context.Context) Result[[]string] {
	r := do[cellsResponse](ctx, c, call{
		endpoint: EndpointCells,
		method:   http.MethodGet,
		path:     PathCells,
	}, nil)
	res := mapResult(r, func(v cellsResponse) []string { return v.Cells })
	res.Value = orEmpty(res.Value)
	return res
}

// CellFruits lists the fruits of every member of cell
func (c *Client) CellFruits(ctx context.Context, cell string) Result[[]domain.Fruit] {
	r := do[fruitsResponse](ctx, c, call{
		endpoint: EndpointCellFruits,
		method:   http.MethodPost,
		path:     PathCellFruits,
		body:     cellRequest{Cell: cell},
	}, nil)
	res := mapResult(r, fruitsOf)
	res.Value = orEmpty(res.Value)
	return res
}
