package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/refind-app/api-go/controllers"
)

func SetupMatchRoutes(protected *gin.RouterGroup, matchController *controllers.MatchController) {
	matches := protected.Group("/matches")
	{
		matches.GET("", matchController.GetMyMatches)
		matches.POST("/:id/accept", matchController.AcceptMatch)
		matches.POST("/:id/reject", matchController.RejectMatch)
		matches.POST("/:id/confirm-return", matchController.ConfirmReturn)
	}
}
