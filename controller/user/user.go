package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoboard/auth"
	"todoboard/logger"
	"todoboard/middleware"
)

// maxUsers caps the directory listing served to assignment pickers.
const maxUsers = 100

// UserController registers the /users route.
func UserController(router *gin.Engine, directory auth.UserDirectory, verifier auth.TokenVerifier) {
	router.GET("/users", middleware.AuthRequired(verifier), func(c *gin.Context) {
		ListUsers(c, directory)
	})
}

func ListUsers(c *gin.Context, directory auth.UserDirectory) {
	users, err := directory.ListUsers(c.Request.Context(), maxUsers)
	if err != nil {
		logger.Sugar.Errorw("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
