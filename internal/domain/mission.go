package domain

import (
	"encoding/json"
)

// Mission is a daily or event task, or a recorded submission of one
type Mission struct {
	ID               string       `json:"id,omitempty"`
	TemplateID       string       `json:"template_id,omitempty"`
	FruitID          string       `json:"fruit_id,omitempty"`
	Name             string       `json:"name"`
	Content          string       `json:"content,omitempty"`
	Type             string       `json:"type,omitempty"`
	CanComplete      *bool        `json:"can_complete,omitempty"`
	Interaction      Interactions `json:"interaction,omitempty"`
	UserID           string       `json:"user_id,omitempty"`
	UserCell         string       `json:"user_cell,omitempty"`
	UserName         string       `json:"user_name,omitempty"`
	ContentCreatedAt string       `json:"content_created_at,omitempty"`
}

// Completable reports whether the mission can still be completed today.
// A missing flag counts as completable.
func (m Mission) Completable() bool {
	return m.CanComplete == nil || *m.CanComplete
}

// Interactions is the list of emoji reactions on a mission.
// The backend sends either bare emoji strings or {"icon", "user_id"} objects.
type Interactions []string

// UnmarshalJSON accepts both interaction encodings
func (i *Interactions) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Interactions, 0, len(raw))
	for _, item := range raw {
		var emoji string
		if err := json.Unmarshal(item, &emoji); err == nil {
			out = append(out, emoji)
			continue
		}

		var obj struct {
			Icon string `json:"icon"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}
		if obj.Icon != "" {
			out = append(out, obj.Icon)
		}
	}

	*i = out
	return nil
}

// MissionList is the result of a missions-by-name query
type MissionList struct {
	Missions []Mission `json:"missions"`
	Count    int       `json:"count"`
}

// ReactionCount is the number of times one emoji was used on a mission
type ReactionCount struct {
	Emoji string
	Count int
}

// BibleVerse is today's scripture passage
type BibleVerse struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"date,omitempty"`
	Reference string `json:"reference"`
	Content   string `json:"content"`
}
