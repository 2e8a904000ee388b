package handler

import (
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/diary"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

// DiaryHandler serves the shared gratitude and event diaries
type DiaryHandler struct {
	*Pages
	service diary.Service
}

// NewDiaryHandler creates the diary handler
func NewDiaryHandler(pages *Pages, service diary.Service) *DiaryHandler {
	return &DiaryHandler{
		Pages:   pages,
		service: service,
	}
}

type interactionForm struct {
	MissionID string `form:"mission_id"`
	Emoji     string `form:"emoji"`
}

// HandleDiary shows today's gratitude entries
func (h *DiaryHandler) HandleDiary(w http.ResponseWriter, r *http.Request) {
	h.renderDiary(w, r, http.StatusOK, "")
}

func (h *DiaryHandler) renderDiary(w http.ResponseWriter, r *http.Request, status int, alert string) {
	st := h.service.LoadGratitude(r.Context())
	body := view.NewDiaryView(st, h.catalog())
	page := h.page(r, titleDiary, currentUser(r), body).WithAlert(alert)
	h.render(w, r, status, view.PageDiary, page)
}

// HandleInteraction adds a reaction. The palette and mission id are checked by the service.
func (h *DiaryHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	var form interactionForm
	if err := decodeForm(r, &form); err != nil {
		logInvalidForm(r, actionReaction, err)
		h.renderDiary(w, r, http.StatusBadRequest, h.catalog().Messages.ValidationError)
		return
	}

	if err := h.service.AddReaction(r.Context(), currentUser(r), form.MissionID, form.Emoji); err != nil {
		status, msg := h.failure(r, actionReaction, err)
		h.renderDiary(w, r, status, msg)
		return
	}
	redirect(w, r, view.PathDiary)
}

// HandleChristmasDiary shows the event diary narrowed by ?filter=
func (h *DiaryHandler) HandleChristmasDiary(w http.ResponseWriter, r *http.Request) {
	st := h.service.LoadChristmas(r.Context(), r.URL.Query().Get(view.ParamFilter))
	body := view.NewChristmasDiaryView(st, h.catalog())
	page := h.page(r, titleDiaryChristmas, currentUser(r), body).WithTheme(view.ThemeChristmas)
	h.render(w, r, http.StatusOK, view.PageDiaryChristmas, page)
}
