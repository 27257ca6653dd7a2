package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/models"
	"github.com/snap-point/tour-guide-api/state"
	"github.com/snap-point/tour-guide-api/utils"
)

type AttractionController struct{}

func NewAttractionController() *AttractionController {
	return &AttractionController{}
}

// ListAttractions filters attractions by name and category.
func (ac *AttractionController) ListAttractions(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	var query AttractionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attractions := session.Store.SearchAttractions(query.Query, models.Category(query.Category))
	if attractions == nil {
		attractions = []models.Attraction{}
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    attractions,
		Meta: gin.H{
			"query":    query.Query,
			"category": query.Category,
			"total":    len(attractions),
		},
	})
}

func (ac *AttractionController) GetAttraction(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	attraction, ok := session.Store.Attraction(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attraction not found"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: attraction})
}

// ToggleBookmark flips the bookmark on an attraction.
func (ac *AttractionController) ToggleBookmark(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	attraction, bookmarks, ok := session.Store.FlipBookmark(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attraction not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"attraction":       attraction,
			"isBookmarked":     attraction.IsBookmarked,
			"bookmarkedPlaces": bookmarks,
		},
	})
}

// ListBookmarks returns the bookmarked attractions in the requested order.
func (ac *AttractionController) ListBookmarks(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	var query BookmarkQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sortBy := state.SortKey(query.SortBy)
	if sortBy == "" {
		sortBy = state.SortByName
	}

	attractions := session.Store.Bookmarked(sortBy)
	if attractions == nil {
		attractions = []models.Attraction{}
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    attractions,
		Meta: gin.H{
			"sortBy":     sortBy,
			"sortLabel":  sortBy.Label(),
			"nextSortBy": sortBy.Next(),
			"stats":      session.Store.BookmarkStats(),
		},
	})
}
