package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = utils.MaxUploadBytes()

	api := r.Group("/api")

	// Public auth routes
	api.POST("/register", controllers.Register)
	api.POST("/login", controllers.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/profile", controllers.GetProfile)
		protected.POST("/profile", controllers.UpsertProfile)
		protected.POST("/food", controllers.UploadFood)
		protected.GET("/food", controllers.ListFoodEntries)
	}

	return r
}
