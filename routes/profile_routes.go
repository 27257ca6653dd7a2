package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/controllers"
)

func SetupProfileRoutes(protected *gin.RouterGroup, profileController *controllers.ProfileController) {
	profile := protected.Group("/profile")
	{
		profile.GET("", profileController.GetProfile)
		profile.POST("/points", profileController.AddPoints)
	}
}
