package todo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoboard/dto"
	"todoboard/logger"
	"todoboard/services"
)

func CreateTodo(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := svc.Create(c.Request.Context(), &req, userId)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}
		logger.Sugar.Errorw("failed to create todo", "userId", userId, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
