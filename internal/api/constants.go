package api

import "time"

// DefaultTimeout bounds every backend call when no timeout is configured
const DefaultTimeout = 10 * time.Second

// MaxResponseBytes caps how much of a backend body is read
const MaxResponseBytes = 1 << 20

// Header names and values
const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

// Backend paths
const (
	PathLogin          = "/login"
	PathLogout         = "/logout"
	PathFruitProgress  = "/fruit/in-progress"
	PathFruit          = "/fruit"
	PathMissionDone    = "/mission/complete"
	PathCompletedCount = "/fruits/completed/count"
	PathFruitTemplate  = "/fruit-template"
	PathHarvest        = "/fruit/harvest"
	PathTestMission    = "/mission/test"
	PathEventMissions  = "/mission/event/in-progress"
	PathEventComplete  = "/mission/event/complete"
	PathMission        = "/mission"
	PathInteraction    = "/mission/interaction"
	PathMyFruits       = "/fruits/mine"
	PathCells          = "/cells"
	PathCellFruits     = "/fruits/cell"
	PathBibleToday     = "/bible/today"
	PathHealth         = "/health"
)

// Endpoint labels for metrics and logs
const (
	EndpointLogin           = "login"
	EndpointLogout          = "logout"
	EndpointSession         = "session_check"
	EndpointCurrentFruit    = "current_fruit"
	EndpointCreateFruit     = "create_fruit"
	EndpointCompleteMission = "complete_mission"
	EndpointCompletedCount  = "completed_count"
	EndpointFruitTemplate   = "fruit_template"
	EndpointHarvest         = "harvest_fruit"
	EndpointTestMission     = "test_mission"
	EndpointEventMissions   = "event_missions"
	EndpointEventComplete   = "complete_event_mission"
	EndpointMissionsByName  = "missions_by_name"
	EndpointInteraction     = "add_interaction"
	EndpointMyFruits        = "my_fruits"
	EndpointCells           = "cells"
	EndpointCellFruits      = "cell_fruits"
	EndpointBibleToday      = "bible_today"
	EndpointHealth          = "health"
)

// DateToday is the date filter value for today's submissions
const DateToday = "today"
