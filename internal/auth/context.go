package auth

import "github.com/gin-gonic/gin"

// GetActor returns the authenticated actor or a zero Actor.
func GetActor(c *gin.Context) Actor {
	if v, ok := c.Get("actor"); ok {
		if a, ok := v.(Actor); ok {
			return a
		}
	}
	return Actor{}
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	if v, ok := c.Get("userEmail"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
