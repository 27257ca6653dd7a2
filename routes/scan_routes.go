package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/controllers"
)

func SetupScanRoutes(protected *gin.RouterGroup, scanController *controllers.ScanController) {
	protected.POST("/scans", scanController.Scan)
	protected.GET("/rewards", scanController.ListRewards)
}
