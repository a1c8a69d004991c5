package middleware

import (
	"log"
	"net/http"

	"repairdesk/internal/domain/entities"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. Flash messages live under two fixed keys so the values stay
// plain strings (no gob registration needed).
const (
	keyUserID      = "user_id"
	keyUserEmail   = "user_email"
	keyAccessToken = "access_token"

	flashSuccessKey = "_flash_success"
	flashErrorKey   = "_flash_error"
)

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a one-shot message rendered on the next page view.
type Notice struct {
	Kind    string
	Message string
}

// CurrentUser returns the authenticated staff identity from the session.
func CurrentUser(c *gin.Context) (entities.StaffUser, bool) {
	s := sessions.Default(c)
	id, _ := s.Get(keyUserID).(string)
	if id == "" {
		return entities.StaffUser{}, false
	}
	email, _ := s.Get(keyUserEmail).(string)
	token, _ := s.Get(keyAccessToken).(string)
	return entities.StaffUser{ID: id, Email: email, AccessToken: token}, true
}

// SetUser stores the staff identity in the session after login.
func SetUser(c *gin.Context, user entities.StaffUser) {
	s := sessions.Default(c)
	s.Set(keyUserID, user.ID)
	s.Set(keyUserEmail, user.Email)
	s.Set(keyAccessToken, user.AccessToken)
}

// ClearUser removes the staff identity, leaving any pending flashes intact.
func ClearUser(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(keyUserID)
	s.Delete(keyUserEmail)
	s.Delete(keyAccessToken)
}

// Flash queues a one-shot notice for the next rendered page.
func Flash(c *gin.Context, kind, message string) {
	s := sessions.Default(c)
	if kind == NoticeError {
		s.AddFlash(message, flashErrorKey)
		return
	}
	s.AddFlash(message, flashSuccessKey)
}

// TakeNotices consumes and returns the queued notices, saving the session so
// they do not reappear.
func TakeNotices(c *gin.Context) []Notice {
	s := sessions.Default(c)
	var notices []Notice
	for _, v := range s.Flashes(flashSuccessKey) {
		if msg, ok := v.(string); ok {
			notices = append(notices, Notice{Kind: NoticeSuccess, Message: msg})
		}
	}
	for _, v := range s.Flashes(flashErrorKey) {
		if msg, ok := v.(string); ok {
			notices = append(notices, Notice{Kind: NoticeError, Message: msg})
		}
	}
	if err := s.Save(); err != nil {
		log.Printf("[session] save failed: %v", err)
	}
	return notices
}

// SaveSession persists session mutations before a redirect.
func SaveSession(c *gin.Context) {
	if err := sessions.Default(c).Save(); err != nil {
		log.Printf("[session] save failed: %v", err)
	}
}

// RequireLogin gates staff-only routes: without an authenticated session the
// wrapped handler never runs and the browser is sent to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			Flash(c, NoticeError, "Please log in to access the dashboard.")
			SaveSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
