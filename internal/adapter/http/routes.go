package http

import (
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health        *handlers.HealthHandler
	Tasks         *handlers.TaskHandler
	Categories    *handlers.CategoryHandler
	Notifications *handlers.NotificationHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware(), middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	authed := api.Group("")
	authed.Use(middleware.ActorMiddleware())
	{
		authed.GET("/tasks", h.Tasks.SearchTasks)
		authed.POST("/tasks", h.Tasks.CreateTask)
		authed.GET("/tasks/:id", h.Tasks.GetTask)
		authed.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		authed.POST("/tasks/:id/accept", h.Tasks.AcceptTask)
		authed.POST("/tasks/:id/reject", h.Tasks.RejectTask)
		authed.POST("/tasks/:id/complete", h.Tasks.CompleteTask)
		authed.GET("/tasks/:id/history", h.Tasks.ListHistory)
		authed.GET("/tasks/:id/comments", h.Tasks.ListComments)
		authed.POST("/tasks/:id/comments", h.Tasks.AddComment)

		authed.GET("/templates", h.Tasks.ListTemplates)
		authed.POST("/templates", h.Tasks.CreateTemplate)
		authed.POST("/templates/:id/instantiate", h.Tasks.InstantiateTemplate)

		authed.GET("/categories", h.Categories.ListCategories)
		authed.POST("/categories", h.Categories.CreateCategory)
		authed.DELETE("/categories/:id", h.Categories.DeleteCategory)

		authed.GET("/notifications", h.Notifications.ListNotifications)
		authed.POST("/notifications/:id/read", h.Notifications.MarkRead)

		authed.GET("/dashboard", h.Tasks.Dashboard)
	}
}
