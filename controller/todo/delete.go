package todo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoboard/logger"
	"todoboard/services"
)

func DeleteTodo(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)
	id := c.Param("id")

	existing, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Sugar.Errorw("failed to load todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	if !existing.IsOwner(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owner can delete"})
		return
	}

	if err := svc.Delete(c.Request.Context(), id); err != nil {
		logger.Sugar.Errorw("failed to delete todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.Status(http.StatusNoContent)
}
