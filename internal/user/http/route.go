package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/users")

	// === Public Routes ===
	group.POST("/register", h.Register)
	group.POST("/login", h.Login)

	// === Authenticated Routes ===
	auth := group.Group("")
	auth.Use(authMiddleware)
	{
		auth.GET("/me", h.Me)
		auth.PATCH("/me", h.UpdateProfile)
		auth.PATCH("/me/password", h.ChangePassword)
		auth.DELETE("/me", h.DeleteAccount)
	}
}

func RegisterAdminRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/members")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.ListMembers)
		group.PATCH("/:id/restrict", h.SetRestricted)
	}
}
