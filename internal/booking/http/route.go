package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Public Routes ===
	group.GET("/room/:roomId/booked-dates", h.BookedDates)

	// === Authenticated Routes ===
	auth := group.Group("")
	auth.Use(authMiddleware)
	{
		auth.POST("/book", h.Create)
		auth.GET("/my-bookings", h.ListMine)
		auth.GET("/:id", h.Get)
		auth.PATCH("/:id", h.Update)
		auth.PATCH("/:id/cancel", h.Cancel)
		auth.PATCH("/:id/payment", h.MarkPaid)
		auth.POST("/:id/feedback", h.SubmitFeedback)
	}
}

func RegisterAdminRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/bookings")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.AdminList)
		group.GET("/:id", h.AdminGet)
		group.PATCH("/:id/status", h.AdminSetStatus)
	}
}
