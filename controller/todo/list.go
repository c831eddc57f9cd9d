package todo

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoboard/logger"
	"todoboard/services"
)

func ListTodos(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)

	todos, err := svc.List(c.Request.Context(), userId)
	if err != nil {
		logger.Sugar.Errorw("failed to list todos", "userId", userId, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}
