package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

type missionsResponse struct {
	Missions []domain.Mission `json:"missions"`
	Count    int              `json:"count"`
}

type eventCompleteRequest struct {
	Name    string `json:"name"`
	Content string `json:"content,omitempty"`
}

type interactionRequest struct {
	MissionID string `json:"mission_id"`
	Emoji     string `json:"emoji"`
}

// EventMissions lists the user's event missions, which are not tied to a fruit
func (c *Client) EventMissions(ctx context.Context) Result[[]domain.Mission] {
	r := do[missionsResponse](ctx, c, call{
		endpoint: EndpointEventMissions,
		method:   http.MethodGet,
		path:     PathEventMissions,
	}, nil)
	res := mapResult(r, func(v missionsResponse) []domain.Mission { return v.Missions })
	res.Value = orEmpty(res.Value)
	return res
}

// CompleteEventMission records an event mission with optional content
func (c *Client) CompleteEventMission(ctx context.Context, name, content string) Result[*domain.Mission] {
	r := do(ctx, c, call{
		endpoint: EndpointEventComplete,
		method:   http.MethodPost,
		path:     PathEventComplete,
		body:     eventCompleteRequest{Name: name, Content: content},
	}, func(m *domain.Mission) bool { return m.ID != "" })
	return mapResult(r, missionPtr)
}

// MissionsByName lists submissions of the named mission. date may be
// DateToday or empty for all dates.
func (c *Client) MissionsByName(ctx context.Context, name, date string) Result[domain.MissionList] {
	q := url.Values{"name": {name}}
	if date != "" {
		q.Set("date", date)
	}
	r := do[missionsResponse](ctx, c, call{
		endpoint: EndpointMissionsByName,
		method:   http.MethodGet,
		path:     PathMission,
		query:    q,
	}, nil)
	res := mapResult(r, func(v missionsResponse) domain.MissionList {
		return domain.MissionList{Missions: v.Missions, Count: v.Count}
	})
	res.Value.Missions = orEmpty(res.Value.Missions)
	return res
}

// AddInteraction adds an emoji reaction to a mission submission
func (c *Client) AddInteraction(ctx context.Context, missionID, emoji string) Result[*domain.Mission] {
	r := do[domain.Mission](ctx, c, call{
		endpoint: EndpointInteraction,
		method:   http.MethodPatch,
		path:     PathInteraction,
		body:     interactionRequest{MissionID: missionID, Emoji: emoji},
	}, nil)
	return mapResult(r, missionPtr)
}
