package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/refind-app/api-go/controllers"
	"github.com/refind-app/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, itemController *controllers.ItemController, matchController *controllers.MatchController) {
	r.Use(middleware.RequestID())

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupItemRoutes(protected, itemController)
		SetupMatchRoutes(protected, matchController)
	}
}
