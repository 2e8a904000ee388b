package view

import (
	"net/url"
)

// Served paths. Templates and the router share these.
const (
	PathRoot                 = "/"
	PathLogin                = "/login"
	PathLogout               = "/logout"
	PathHome                 = "/home"
	PathPlant                = "/home/plant"
	PathCompleteMission      = "/home/missions/complete"
	PathHarvest              = "/home/harvest"
	PathTestMission          = "/home/missions/test"
	PathChristmas            = "/home/christmas"
	PathCompleteEventMission = "/home/christmas/missions/complete"
	PathGrove                = "/grove"
	PathDiary                = "/diary"
	PathInteraction          = "/diary/interaction"
	PathDiaryChristmas       = "/diary/christmas"
	PathStatic               = "/static"
)

// Query parameter and form field names
const (
	ParamModal       = "modal"
	ParamMode        = "mode"
	ParamCell        = "cell"
	ParamView        = "view"
	ParamFilter      = "filter"
	FieldName        = "name"
	FieldContent     = "content"
	FieldConfirmRead = "confirm_read"
	FieldMissionID   = "mission_id"
	FieldEmoji       = "emoji"
	FieldCell        = "cell"
)

// Modal names on the home page
const (
	ModalGratitude = "gratitude"
	ModalBible     = "bible"
)

// withQuery appends the non-empty key/value pairs to path as a query string
func withQuery(path string, pairs ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
