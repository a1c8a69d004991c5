package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/domain/entities"
	"repairdesk/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// newTestRouter builds a router with the same session and template setup the
// real server uses, so handlers run against actual cookie sessions.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("repairdesk_session", cookie.NewStore([]byte("test-secret"))))
	r.SetHTMLTemplate(web.Templates())
	return r
}

// loginCookies drives a helper route that writes a staff identity into the
// session and returns the resulting cookies for replay on later requests.
func loginCookies(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	r.GET("/__test_login", func(c *gin.Context) {
		middleware.SetUser(c, entities.StaffUser{ID: "u-1", Email: "staff@example.com", AccessToken: "tok"})
		middleware.SaveSession(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/__test_login", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("test login route returned %d", w.Code)
	}
	return w.Result().Cookies()
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func doPostForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}
