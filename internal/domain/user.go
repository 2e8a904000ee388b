package domain

// Session cookie names issued by the backend on login
const (
	CookieUserID   = "user_id"
	CookieUserCell = "user_cell"
	CookieUserName = "user_name"
)

// User is the logged-in user as carried in the session cookies
type User struct {
	ID   string
	Cell string
	Name string
}

// LoginResult is the normalized outcome of a login call
type LoginResult struct {
	Success bool
	UserID  string
	Message string
}
