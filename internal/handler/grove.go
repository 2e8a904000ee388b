package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GrapeChallenge_Web/internal/grove"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

// GroveHandler serves the grove of harvested fruits
type GroveHandler struct {
	*Pages
	service grove.Service
	loc     *time.Location
}

// NewGroveHandler creates the grove handler. loc formats the harvest dates.
func NewGroveHandler(pages *Pages, service grove.Service, loc *time.Location) *GroveHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &GroveHandler{
		Pages:   pages,
		service: service,
		loc:     loc,
	}
}

// HandleGrove shows the gallery for ?mode=mine|cell|other with ?cell= and ?view=grid|basket
func (h *GroveHandler) HandleGrove(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := grove.ParseMode(q.Get(view.ParamMode))
	layout := grove.ParseLayout(q.Get(view.ParamView))

	user := currentUser(r)
	st := h.service.Load(r.Context(), user, mode, q.Get(view.ParamCell))
	body := view.NewGroveView(st, layout, h.loc)
	h.render(w, r, http.StatusOK, view.PageGrove, h.page(r, titleGrove, user, body))
}
