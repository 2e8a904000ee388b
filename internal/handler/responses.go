package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
)

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgRenderFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// mapServiceErrorToUserMessage maps page service errors to a status and the
// alert shown on the re-rendered page
func mapServiceErrorToUserMessage(err error, msgs content.Messages) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, msgs.ServerError
	}

	var missing *domain.TemplateNotFoundError
	if errors.As(err, &missing) {
		return http.StatusNotFound, fmt.Sprintf(msgs.TemplateNotFound, missing.Template)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidContent):
		return http.StatusBadRequest, msgs.MinLengthError
	case errors.Is(err, domain.ErrReadNotConfirmed):
		return http.StatusBadRequest, msgs.ReadNotConfirmed
	case errors.Is(err, domain.ErrInvalidEmoji), errors.Is(err, domain.ErrMissionIDRequired):
		return http.StatusBadRequest, msgs.ValidationError
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, msgs.MissionNotFound
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, msgs.CreateFruitError
	case errors.Is(err, domain.ErrNotHarvestable):
		return http.StatusConflict, msgs.NotHarvestable
	case errors.Is(err, domain.ErrNoFruit):
		return http.StatusConflict, msgs.FetchFruitError
	case errors.Is(err, domain.ErrMissionDone):
		return http.StatusConflict, msgs.CompleteMissionError
	case errors.Is(err, domain.ErrTestMissionBlocked):
		return http.StatusForbidden, msgs.TestMissionError
	case errors.Is(err, domain.ErrCreateFruitFailed):
		return http.StatusBadGateway, msgs.CreateFruitError
	case errors.Is(err, domain.ErrCompleteMissionFailed):
		return http.StatusBadGateway, msgs.CompleteMissionError
	case errors.Is(err, domain.ErrHarvestFailed):
		return http.StatusBadGateway, msgs.HarvestFruitError
	case errors.Is(err, domain.ErrTestMissionFailed):
		return http.StatusBadGateway, msgs.TestMissionError
	case errors.Is(err, domain.ErrInteractionFailed):
		return http.StatusBadGateway, msgs.InteractionError
	case errors.Is(err, domain.ErrLoginFailed), errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, msgs.LoginError
	case errors.Is(err, domain.ErrBackendUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, msgs.NetworkError
	}

	return http.StatusInternalServerError, msgs.ServerError
}

// failure logs a failed action and returns the status and alert for the page
func (p *Pages) failure(r *http.Request, action string, err error) (int, string) {
	status, msg := mapServiceErrorToUserMessage(err, p.catalog().Messages)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("Action failed", "action", action, "status", status, "error", err)
	} else {
		log.Warn("Action refused", "action", action, "status", status, "error", err)
	}
	return status, msg
}
