package handlers

import (
	"net/http"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves staff login and logout.

type AuthHandler struct {
	auth usecase.IAuthUseCase
}

func NewAuthHandler(auth usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{})
}

// Login authenticates against the identity provider and, on success, stores
// the minimal staff identity in the session. Failures re-render the form
// with a fixed notice; no session is created.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBind(&payload); err != nil {
		appErr := mapAuthError(usecase.ErrMissingCredentials)
		render(c, http.StatusOK, "login.html", gin.H{},
			middleware.Notice{Kind: middleware.NoticeError, Message: appErr.Message})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		render(c, http.StatusOK, "login.html", gin.H{},
			middleware.Notice{Kind: middleware.NoticeError, Message: appErr.Message})
		return
	}

	middleware.SetUser(c, user)
	middleware.Flash(c, middleware.NoticeSuccess, "Welcome back!")
	middleware.SaveSession(c)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout revokes the remote session best-effort and always clears the local
// one.
func (h *AuthHandler) Logout(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		h.auth.Logout(c.Request.Context(), user.AccessToken)
	}
	middleware.ClearUser(c)
	middleware.Flash(c, middleware.NoticeSuccess, "You have been logged out.")
	middleware.SaveSession(c)
	c.Redirect(http.StatusFound, "/login")
}
