package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

type createFruitRequest struct {
	TemplateID string `json:"template_id,omitempty"`
}

type fruitIDRequest struct {
	FruitID string `json:"fruit_id"`
}

type completeMissionRequest struct {
	FruitID string `json:"fruit_id"`
	Name    string `json:"name"`
	Content string `json:"content,omitempty"`
}

type countResponse struct {
	Count int `json:"count"`
}

type templatesResponse struct {
	FruitTemplates []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"fruit_templates"`
}

func hasID(f *domain.Fruit) bool { return f.ID != "" }

func fruitPtr(f domain.Fruit) *domain.Fruit { return &f }

func missionPtr(m domain.Mission) *domain.Mission { return &m }

// CurrentFruit returns the in-progress fruit and its missions, nil when none.
// missionType filters the missions; empty means the backend default.
func (c *Client) CurrentFruit(ctx context.Context, missionType string) Result[*domain.FruitWithMissions] {
	var q url.Values
	if missionType != "" {
		q = url.Values{"mission_type": {missionType}}
	}
	r := do(ctx, c, call{
		endpoint: EndpointCurrentFruit,
		method:   http.MethodGet,
		path:     PathFruitProgress,
		query:    q,
	}, func(v *domain.FruitWithMissions) bool {
		return v.Fruit != nil && v.Fruit.FruitID != ""
	})
	return mapResult(r, func(v domain.FruitWithMissions) *domain.FruitWithMissions {
		v.Missions = orEmpty(v.Missions)
		return &v
	})
}

// CreateFruit plants a new fruit. An empty templateID lets the backend pick one.
func (c *Client) CreateFruit(ctx context.Context, templateID string) Result[*domain.Fruit] {
	r := do(ctx, c, call{
		endpoint: EndpointCreateFruit,
		method:   http.MethodPost,
		path:     PathFruit,
		body:     createFruitRequest{TemplateID: templateID},
	}, hasID)
	return mapResult(r, fruitPtr)
}

// CompleteMission records a fruit mission. content is sent only when non-empty.
func (c *Client) CompleteMission(ctx context.Context, fruitID, name, content string) Result[*domain.Mission] {
	r := do(ctx, c, call{
		endpoint: EndpointCompleteMission,
		method:   http.MethodPost,
		path:     PathMissionDone,
		body:     completeMissionRequest{FruitID: fruitID, Name: name, Content: content},
	}, func(m *domain.Mission) bool { return m.ID != "" })
	return mapResult(r, missionPtr)
}

// CompletedFruitCount returns how many fruits the user has harvested
func (c *Client) CompletedFruitCount(ctx context.Context) Result[int] {
	r := do[countResponse](ctx, c, call{
		endpoint: EndpointCompletedCount,
		method:   http.MethodGet,
		path:     PathCompletedCount,
	}, nil)
	return mapResult(r, func(v countResponse) int { return v.Count })
}

// FruitTemplateID looks up a template by name and returns the first match's id
func (c *Client) FruitTemplateID(ctx context.Context, name string) Result[string] {
	r := do(ctx, c, call{
		endpoint: EndpointFruitTemplate,
		method:   http.MethodGet,
		path:     PathFruitTemplate,
		query:    url.Values{"name": {name}},
	}, func(v *templatesResponse) bool {
		return len(v.FruitTemplates) > 0 && v.FruitTemplates[0].ID != ""
	})
	return mapResult(r, func(v templatesResponse) string { return v.FruitTemplates[0].ID })
}

// HarvestFruit harvests a fruit at its final stage
func (c *Client) HarvestFruit(ctx context.Context, fruitID string) Result[*domain.Fruit] {
	r := do(ctx, c, call{
		endpoint: EndpointHarvest,
		method:   http.MethodPost,
		path:     PathHarvest,
		body:     fruitIDRequest{FruitID: fruitID},
	}, hasID)
	return mapResult(r, fruitPtr)
}

// CompleteTestMission advances a fruit without daily limits. Dev backends only.
func (c *Client) CompleteTestMission(ctx context.Context, fruitID string) Result[*domain.Mission] {
	r := do(ctx, c, call{
		endpoint: EndpointTestMission,
		method:   http.MethodPost,
		path:     PathTestMission,
		body:     fruitIDRequest{FruitID: fruitID},
	}, func(m *domain.Mission) bool { return m.FruitID != "" })
	return mapResult(r, missionPtr)
}
