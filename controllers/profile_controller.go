package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/utils"
)

type ProfileController struct{}

func NewProfileController() *ProfileController {
	return &ProfileController{}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"user":         session.Store.User(),
			"progress":     session.Store.Progress(),
			"achievements": session.Store.Achievements(),
		},
	})
}

// AddPoints credits (or debits) the user's points directly.
func (pc *ProfileController) AddPoints(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	var req PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session.Store.UpdateUserPoints(*req.Points)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"user":     session.Store.User(),
			"progress": session.Store.Progress(),
		},
	})
}
