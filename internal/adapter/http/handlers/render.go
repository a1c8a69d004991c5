package handlers

import (
	"repairdesk/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// render merges queued flash notices (and any notices produced while
// handling the current request) into the template data and emits HTML.
func render(c *gin.Context, status int, name string, data gin.H, extra ...middleware.Notice) {
	if data == nil {
		data = gin.H{}
	}
	notices := middleware.TakeNotices(c)
	notices = append(notices, extra...)
	data["Notices"] = notices
	if _, ok := data["User"]; !ok {
		if user, logged := middleware.CurrentUser(c); logged {
			data["User"] = user
		}
	}
	c.HTML(status, name, data)
}
