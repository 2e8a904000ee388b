package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgNotAuthenticated = "not authenticated"
	ErrMsgLoginFailed      = "login failed"

	// Fruit errors
	ErrMsgNoFruit            = "no fruit in progress"
	ErrMsgCreateFruitFailed  = "failed to create fruit"
	ErrMsgTemplateNotFound   = "fruit template not found"
	ErrMsgNotHarvestable     = "fruit is not harvestable yet"
	ErrMsgHarvestFailed      = "failed to harvest fruit"
	ErrMsgTestMissionFailed  = "failed to complete test mission"
	ErrMsgTestMissionBlocked = "test mission is only available in dev"

	// Mission errors
	ErrMsgMissionNotFound       = "mission not found"
	ErrMsgMissionDone           = "mission already completed today"
	ErrMsgCompleteMissionFailed = "failed to complete mission"
	ErrMsgInvalidContent        = "content must be between 5 and 1000 characters"
	ErrMsgReadNotConfirmed      = "reading was not confirmed"

	// Interaction errors
	ErrMsgInvalidEmoji      = "emoji is not in the reaction palette"
	ErrMsgInteractionFailed = "failed to add interaction"
	ErrMsgMissionIDRequired = "mission id is required"

	// Backend errors
	ErrMsgBackendUnavailable = "backend unavailable"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotAuthenticated = errors.New(ErrMsgNotAuthenticated)
	ErrLoginFailed      = errors.New(ErrMsgLoginFailed)

	ErrNoFruit            = errors.New(ErrMsgNoFruit)
	ErrCreateFruitFailed  = errors.New(ErrMsgCreateFruitFailed)
	ErrTemplateNotFound   = errors.New(ErrMsgTemplateNotFound)
	ErrNotHarvestable     = errors.New(ErrMsgNotHarvestable)
	ErrHarvestFailed      = errors.New(ErrMsgHarvestFailed)
	ErrTestMissionFailed  = errors.New(ErrMsgTestMissionFailed)
	ErrTestMissionBlocked = errors.New(ErrMsgTestMissionBlocked)

	ErrMissionNotFound       = errors.New(ErrMsgMissionNotFound)
	ErrMissionDone           = errors.New(ErrMsgMissionDone)
	ErrCompleteMissionFailed = errors.New(ErrMsgCompleteMissionFailed)
	ErrInvalidContent        = errors.New(ErrMsgInvalidContent)
	ErrReadNotConfirmed      = errors.New(ErrMsgReadNotConfirmed)

	ErrInvalidEmoji      = errors.New(ErrMsgInvalidEmoji)
	ErrInteractionFailed = errors.New(ErrMsgInteractionFailed)
	ErrMissionIDRequired = errors.New(ErrMsgMissionIDRequired)

	ErrBackendUnavailable = errors.New(ErrMsgBackendUnavailable)
)

// TemplateNotFoundError reports which special template the backend lacks
type TemplateNotFoundError struct {
	Template string
}

func (e *TemplateNotFoundError) Error() string {
	return ErrMsgTemplateNotFound + ": " + e.Template
}

// Unwrap lets errors.Is match ErrTemplateNotFound
func (e *TemplateNotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}
