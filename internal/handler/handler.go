package handler

import (
	"io"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

// Renderer renders a named page
type Renderer interface {
	Render(w io.Writer, name string, page *view.Page) error
}

// Pages is the rendering base shared by the page handlers
type Pages struct {
	renderer Renderer
	store    *content.Store
}

// NewPages creates the rendering base. store supplies the live catalog.
func NewPages(renderer Renderer, store *content.Store) *Pages {
	return &Pages{
		renderer: renderer,
		store:    store,
	}
}

func (p *Pages) catalog() *content.Catalog {
	return p.store.Current()
}

// page wraps body in the signed-in layout with the request's CSRF field
func (p *Pages) page(r *http.Request, title string, user domain.User, body any) *view.Page {
	return view.NewPage(title, user, p.catalog().InquiryURL, body).
		WithCSRF(csrf.TemplateField(r))
}

// publicPage wraps body in the signed-out layout
func (p *Pages) publicPage(r *http.Request, title string, body any) *view.Page {
	return view.NewPublicPage(title, body).WithCSRF(csrf.TemplateField(r))
}

// render writes page with status. The page is rendered into a pooled buffer
// first so a template failure still produces a clean 500.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, name string, page *view.Page) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := p.renderer.Render(buf, name, page); err != nil {
		logger.FromContext(r.Context()).Error("Failed to render page", "page", name, "error", err)
		http.Error(w, ErrMsgRenderFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set(headerContentType, contentTypeHTML)
	w.Header().Set(headerCacheControl, cacheNoStore)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write response buffer", "error", err)
	}
}

// renderError shows the error page
func (p *Pages) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	page := p.publicPage(r, titleError, view.ErrorView{Status: status, Message: msg})
	p.render(w, r, status, view.PageError, page)
}

// NotFound renders the error page for unknown routes
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, r, http.StatusNotFound, ErrMsgPageNotFound)
}

// Forbidden renders the error page for a rejected form post
func (p *Pages) Forbidden(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, r, http.StatusForbidden, ErrMsgFormExpired)
}

// redirect answers a form post with 303 so a reload re-fetches the page
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// HandleRoot sends the visitor to the home page
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, view.PathHome)
}
