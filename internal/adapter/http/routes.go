package http

import (
	"github.com/gin-gonic/gin"

	"taskcall/internal/adapter/http/handlers"
	"taskcall/internal/adapter/http/middleware"
	"taskcall/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	authService ports.AuthService,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	subtaskHandler *handlers.SubtaskHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	{
		authed.POST("/tasks", taskHandler.CreateTask)
		authed.GET("/tasks", taskHandler.ListTasks)
		authed.PATCH("/tasks/:task_id", taskHandler.UpdateTask)
		authed.DELETE("/tasks/:task_id", taskHandler.DeleteTask)

		authed.POST("/tasks/:task_id/subtasks", subtaskHandler.CreateSubtask)
		authed.GET("/subtasks", subtaskHandler.ListSubtasks)
		authed.PATCH("/subtasks/:subtask_id", subtaskHandler.UpdateSubtask)
		authed.DELETE("/subtasks/:subtask_id", subtaskHandler.DeleteSubtask)
	}
}
