package view

import (
	"html/template"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// Theme selects the page background
type Theme string

// Page themes
const (
	ThemeDefault   Theme = "default"
	ThemeChristmas Theme = "christmas"
)

// Page names, one template each
const (
	PageLogin          = "login"
	PageLogout         = "logout"
	PageHome           = "home"
	PageHomeChristmas  = "home_christmas"
	PageGrove          = "grove"
	PageDiary          = "diary"
	PageDiaryChristmas = "diary_christmas"
	PageError          = "error"
)

// Link is a sidebar entry
type Link struct {
	Href     string
	Label    string
	External bool
}

// Sidebar is the slide-in navigation shown on every signed-in page
type Sidebar struct {
	Title      string
	Links      []Link
	LogoutHref string
}

// Page is the layout data wrapped around every page body
type Page struct {
	Title string
	Theme Theme
	User  domain.User

	// Sidebar is nil on the signed-out pages
	Sidebar *Sidebar

	// CSRF is the hidden token field, empty when CSRF protection is off
	CSRF template.HTML

	// Alert is shown above the body when an action failed
	Alert string

	// Refresh navigates to RefreshURL after RefreshAfter seconds
	RefreshURL   string
	RefreshAfter float64

	Body any
}

// NewPage creates a signed-in page
func NewPage(title string, user domain.User, inquiryURL string, body any) *Page {
	return &Page{
		Title:   title,
		Theme:   ThemeDefault,
		User:    user,
		Sidebar: NewSidebar(inquiryURL),
		Body:    body,
	}
}

// NewPublicPage creates a page without navigation
func NewPublicPage(title string, body any) *Page {
	return &Page{
		Title: title,
		Theme: ThemeDefault,
		Body:  body,
	}
}

// NewSidebar builds the navigation. The inquiry link is omitted when url is empty.
func NewSidebar(inquiryURL string) *Sidebar {
	links := []Link{
		{Href: PathGrove, Label: "과수원"},
		{Href: PathDiary, Label: "감사일기장"},
	}
	if inquiryURL != "" {
		links = append(links, Link{Href: inquiryURL, Label: "문의하기", External: true})
	}
	return &Sidebar{
		Title:      "말씀 챌린지",
		Links:      links,
		LogoutHref: PathLogout,
	}
}

// WithAlert sets the failure alert
func (p *Page) WithAlert(msg string) *Page {
	p.Alert = msg
	return p
}

// WithCSRF sets the hidden token field
func (p *Page) WithCSRF(field template.HTML) *Page {
	p.CSRF = field
	return p
}

// WithTheme sets the page background
func (p *Page) WithTheme(t Theme) *Page {
	p.Theme = t
	return p
}

// WithRefresh navigates to url after the given delay in seconds
func (p *Page) WithRefresh(url string, after float64) *Page {
	p.RefreshURL = url
	p.RefreshAfter = after
	return p
}

// LoginView is the login form. Cell and Name are echoed back after a failure.
type LoginView struct {
	Cell string
	Name string
}

// LogoutView is the logout confirmation
type LogoutView struct {
	Message string
}

// ErrorView is the generic failure page
type ErrorView struct {
	Status  int
	Message string
}
