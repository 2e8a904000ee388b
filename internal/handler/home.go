package handler

import (
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/home"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

// Action names for logs
const (
	actionPlant        = "plant_seed"
	actionComplete     = "complete_mission"
	actionHarvest      = "harvest"
	actionTestMission  = "test_mission"
	actionEventMission = "complete_event_mission"
	actionReaction     = "add_reaction"
)

// HomeHandler serves the daily mission board and its actions
type HomeHandler struct {
	*Pages
	service home.Service
}

// NewHomeHandler creates the home handler
func NewHomeHandler(pages *Pages, service home.Service) *HomeHandler {
	return &HomeHandler{
		Pages:   pages,
		service: service,
	}
}

type missionForm struct {
	Name        string  `form:"name" validate:"required"`
	Content     rawText `form:"content"`
	ConfirmRead bool    `form:"confirm_read"`
}

// HandleHome shows the board for the current fruit, with ?modal= opening a mission form
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	st := h.service.Load(r.Context(), currentUser(r))
	modal := view.HomeModal{Name: r.URL.Query().Get(view.ParamModal)}
	h.render(w, r, http.StatusOK, view.PageHome, h.homePage(r, st, modal))
}

// homePage builds the home page. The verse is fetched only when the bible modal can open.
func (h *HomeHandler) homePage(r *http.Request, st *home.State, modal view.HomeModal) *view.Page {
	cat := h.catalog()
	if modal.Name == view.ModalBible && modal.Verse == nil {
		if m, ok := st.FindMission(cat.Missions.BibleReading); ok && m.Completable() && !st.Harvestable() {
			verse := h.service.TodayVerse(r.Context())
			modal.Verse = &verse
		}
	}
	return h.page(r, titleHome, st.User, view.NewHomeView(st, cat, modal))
}

// fail re-renders the home page with the alert for err
func (h *HomeHandler) fail(w http.ResponseWriter, r *http.Request, action string, err error, modal view.HomeModal) {
	status, msg := h.failure(r, action, err)
	h.alert(w, r, status, msg, modal)
}

func (h *HomeHandler) alert(w http.ResponseWriter, r *http.Request, status int, msg string, modal view.HomeModal) {
	st := h.service.Load(r.Context(), currentUser(r))
	h.render(w, r, status, view.PageHome, h.homePage(r, st, modal).WithAlert(msg))
}

// HandlePlant plants a new seed
func (h *HomeHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.PlantSeed(r.Context(), currentUser(r)); err != nil {
		h.fail(w, r, actionPlant, err, view.HomeModal{})
		return
	}
	redirect(w, r, view.PathHome)
}

// HandleCompleteMission completes a daily mission. A refused gratitude entry reopens its modal with the draft.
func (h *HomeHandler) HandleCompleteMission(w http.ResponseWriter, r *http.Request) {
	var form missionForm
	if err := decodeForm(r, &form); err != nil {
		logInvalidForm(r, actionComplete, err)
		h.alert(w, r, http.StatusBadRequest, h.catalog().Messages.ValidationError, view.HomeModal{})
		return
	}

	in := home.MissionInput{Name: form.Name, Content: string(form.Content), ConfirmRead: form.ConfirmRead}
	if err := h.service.CompleteMission(r.Context(), currentUser(r), in); err != nil {
		h.fail(w, r, actionComplete, err, h.reopen(form))
		return
	}
	redirect(w, r, view.PathHome)
}

// reopen returns the modal that submitted form, keeping its draft
func (h *HomeHandler) reopen(form missionForm) view.HomeModal {
	names := h.catalog().Missions
	switch form.Name {
	case names.GratitudeDiary:
		return view.HomeModal{Name: view.ModalGratitude, Draft: string(form.Content)}
	case names.BibleReading:
		return view.HomeModal{Name: view.ModalBible}
	default:
		return view.HomeModal{}
	}
}

// HandleHarvest shows the harvested state and refreshes into the next page
func (h *HomeHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	st, err := h.service.Harvest(r.Context(), user)
	if err != nil {
		status, msg := h.failure(r, actionHarvest, err)
		if st == nil {
			st = h.service.Load(r.Context(), user)
		}
		h.render(w, r, status, view.PageHome, h.homePage(r, st, view.HomeModal{}).WithAlert(msg))
		return
	}

	page := h.homePage(r, st, view.HomeModal{}).
		WithRefresh(view.PathHome, content.HarvestCompleteDelay.Seconds())
	h.render(w, r, http.StatusOK, view.PageHome, page)
}

// HandleTestMission completes the dev-only test mission
func (h *HomeHandler) HandleTestMission(w http.ResponseWriter, r *http.Request) {
	if err := h.service.TestMission(r.Context(), currentUser(r)); err != nil {
		h.fail(w, r, actionTestMission, err, view.HomeModal{})
		return
	}
	redirect(w, r, view.PathHome)
}

type eventMissionForm struct {
	Name    string  `form:"name" validate:"required"`
	Content rawText `form:"content"`
}

// HandleChristmas shows the event mission board
func (h *HomeHandler) HandleChristmas(w http.ResponseWriter, r *http.Request) {
	st := h.service.LoadEvent(r.Context(), currentUser(r))
	h.render(w, r, http.StatusOK, view.PageHomeChristmas, h.christmasPage(r, st, r.URL.Query().Get(view.ParamModal), ""))
}

func (h *HomeHandler) christmasPage(r *http.Request, st *home.EventState, modal, draft string) *view.Page {
	body := view.NewChristmasHomeView(st, modal, draft)
	return h.page(r, titleHomeChristmas, st.User, body).WithTheme(view.ThemeChristmas)
}

// HandleCompleteEventMission completes one event mission
func (h *HomeHandler) HandleCompleteEventMission(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	var form eventMissionForm
	if err := decodeForm(r, &form); err != nil {
		logInvalidForm(r, actionEventMission, err)
		h.christmasAlert(w, r, http.StatusBadRequest, h.catalog().Messages.MissionNotFound, form)
		return
	}

	if err := h.service.CompleteEventMission(r.Context(), user, form.Name, string(form.Content)); err != nil {
		status, msg := h.failure(r, actionEventMission, err)
		h.christmasAlert(w, r, status, msg, form)
		return
	}
	redirect(w, r, view.PathChristmas)
}

// christmasAlert re-renders the event page with the submitted modal reopened
func (h *HomeHandler) christmasAlert(w http.ResponseWriter, r *http.Request, status int, msg string, form eventMissionForm) {
	st := h.service.LoadEvent(r.Context(), currentUser(r))
	h.render(w, r, status, view.PageHomeChristmas, h.christmasPage(r, st, form.Name, string(form.Content)).WithAlert(msg))
}
