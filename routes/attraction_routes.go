package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/controllers"
)

func SetupAttractionRoutes(protected *gin.RouterGroup, attractionController *controllers.AttractionController) {
	attractions := protected.Group("/attractions")
	{
		attractions.GET("", attractionController.ListAttractions)
		attractions.GET("/:id", attractionController.GetAttraction)
		attractions.POST("/:id/bookmark", attractionController.ToggleBookmark)
	}

	protected.GET("/bookmarks", attractionController.ListBookmarks)
}
