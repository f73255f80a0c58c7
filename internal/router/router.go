package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Profile(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ToggleLike(c *ginext.Context)
	BookEvent(c *ginext.Context)
	GetTicket(c *ginext.Context)
	CancelTicket(c *ginext.Context)
	ListUserTickets(c *ginext.Context)
	CreateOrder(c *ginext.Context)
	RequestEmailVerification(c *ginext.Context)
	ConfirmEmailVerification(c *ginext.Context)
	RequestPhoneVerification(c *ginext.Context)
	ConfirmPhoneVerification(c *ginext.Context)
	VerificationStatus(c *ginext.Context)
	AdminStats(c *ginext.Context)
	AdminUsers(c *ginext.Context)
	AdminRecentEvents(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authn, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/profile", authn, h.Profile)

		// Events
		api.POST("/events", authn, admin, h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/like", authn, h.ToggleLike)

		// Tickets
		api.POST("/events/:id/book", authn, h.BookEvent)
		api.GET("/tickets/:id", authn, h.GetTicket)
		api.DELETE("/tickets/:id", authn, h.CancelTicket)
		api.GET("/users/:id/tickets", authn, h.ListUserTickets)

		// Payments
		api.POST("/orders", authn, h.CreateOrder)

		// Verification
		api.POST("/verify/email", authn, h.RequestEmailVerification)
		api.POST("/verify/email/confirm", h.ConfirmEmailVerification)
		api.POST("/verify/phone", authn, h.RequestPhoneVerification)
		api.POST("/verify/phone/confirm", authn, h.ConfirmPhoneVerification)
		api.GET("/verification/:id", authn, h.VerificationStatus)

		// Admin
		api.GET("/admin/stats", authn, admin, h.AdminStats)
		api.GET("/admin/users", authn, admin, h.AdminUsers)
		api.GET("/admin/events/recent", authn, admin, h.AdminRecentEvents)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
