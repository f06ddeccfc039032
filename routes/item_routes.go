package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/refind-app/api-go/controllers"
)

func SetupItemRoutes(protected *gin.RouterGroup, itemController *controllers.ItemController) {
	protected.POST("/lost-items", itemController.CreateLostItem)
	protected.POST("/found-items", itemController.CreateFoundItem)
}
