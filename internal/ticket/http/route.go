package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/tickets")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListMine)
		group.GET("/:id", h.Get)
		group.POST("/:id/messages", h.AddMessage)
	}
}

func RegisterAdminRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/tickets")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.AdminList)
		group.PATCH("/:id/status", h.AdminSetStatus)
	}
}
