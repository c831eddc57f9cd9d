package todo

import (
	"github.com/gin-gonic/gin"

	"todoboard/auth"
	"todoboard/middleware"
	"todoboard/services"
)

// TodoController registers the /todos routes. Identity extraction and
// permission gating live here; the service below is policy-agnostic.
func TodoController(router *gin.Engine, svc *services.TodoService, verifier auth.TokenVerifier) {
	routes := router.Group("/todos", middleware.AuthRequired(verifier))
	{
		routes.GET("", func(c *gin.Context) {
			ListTodos(c, svc)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTodo(c, svc)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateTodo(c, svc)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTodo(c, svc)
		})
	}
}
