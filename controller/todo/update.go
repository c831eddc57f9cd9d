package todo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoboard/dto"
	"todoboard/logger"
	"todoboard/services"
)

func UpdateTodo(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)
	id := c.Param("id")

	existing, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Sugar.Errorw("failed to load todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	isOwner := existing.IsOwner(userId)
	if !isOwner && !existing.IsAssignee(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
		return
	}

	var patch dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Reassignment is the owner's alone; reject before the service runs.
	if !isOwner && patch.AssigneeIDs != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owner can change assignees"})
		return
	}

	updated, err := svc.Update(c.Request.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Sugar.Errorw("failed to update todo", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
