package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jayagayathricodes/SmartTaskManager/config"
	"github.com/jayagayathricodes/SmartTaskManager/controllers"
	"github.com/jayagayathricodes/SmartTaskManager/middleware"
	"github.com/jayagayathricodes/SmartTaskManager/repository"
	"github.com/jayagayathricodes/SmartTaskManager/services"
	"github.com/jayagayathricodes/SmartTaskManager/web"
)

// RegisterRoutes wires the task API and the embedded web client.
func RegisterRoutes(r *gin.Engine, conf config.Config, client *services.OpenAIClient) {
	store := repository.NewTaskStore(config.DB)
	enhancer := services.NewEnhancementService(client)
	taskService := services.NewTaskService(store, enhancer)
	taskController := controllers.NewTaskController(taskService)

	api := r.Group("/api")
	api.Use(middleware.CurrentUser(conf.PlaceholderUserID))
	{
		api.GET("/Task", taskController.GetTasks)
		api.GET("/Task/:id", taskController.GetTask)
		api.POST("/Task", taskController.CreateTask)
		api.PUT("/Task/:id", taskController.UpdateTask)
		api.DELETE("/Task/:id", taskController.DeleteTask)
	}

	web.Register(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
