package routes

import (
	"repairdesk/internal/adapter/http/handlers"
	"repairdesk/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathTracking  = "/"
	PathLogin     = "/login"
	PathLogout    = "/logout"
	PathDashboard = "/dashboard"
	PathAdd       = "/add"
	PathUpdate    = "/update/:id"
	PathDelete    = "/delete/:id"
	PathPay       = "/pay/:id"
)

func addTicketRoutes(
	rg *gin.RouterGroup,
	trackingHandler *handlers.TrackingHandler,
	authHandler *handlers.AuthHandler,
	ticketHandler *handlers.TicketHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	// Customer-facing routes: tracking lookup and pay-on-pickup.
	rg.GET(PathTracking, trackingHandler.ShowTrackingPage)
	rg.POST(PathTracking, trackingHandler.TrackTicket)
	rg.POST(PathPay, paymentHandler.PayTicket)

	rg.GET(PathLogin, authHandler.ShowLogin)
	rg.POST(PathLogin, authHandler.Login)
	rg.GET(PathLogout, authHandler.Logout)

	// Staff-only routes behind the session guard.
	staff := rg.Group("", middleware.RequireLogin())
	{
		staff.GET(PathDashboard, ticketHandler.Dashboard)
		staff.POST(PathAdd, ticketHandler.AddTicket)
		staff.POST(PathUpdate, ticketHandler.UpdateTicket)
		staff.POST(PathDelete, ticketHandler.DeleteTicket)
	}
}
