package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/controllers"
)

func SetupTourRoutes(protected *gin.RouterGroup, tourController *controllers.TourController) {
	tours := protected.Group("/tours")
	{
		tours.GET("", tourController.ListTours)
		tours.GET("/:id", tourController.GetTour)
		tours.POST("/:id/unlock", tourController.UnlockTour)
	}
}
