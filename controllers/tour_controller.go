package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/media"
	"github.com/snap-point/tour-guide-api/models"
	"github.com/snap-point/tour-guide-api/utils"
)

type TourController struct {
	Signer media.Signer
}

func NewTourController(signer media.Signer) *TourController {
	return &TourController{Signer: signer}
}

// withMediaURLs swaps stored object keys for playable URLs. The full recording
// is only handed out once the tour is unlocked.
func (tc *TourController) withMediaURLs(ctx context.Context, tour models.AudioTour) (models.AudioTour, error) {
	preview, err := tc.Signer.AudioURL(ctx, tour.PreviewURL)
	if err != nil {
		return tour, err
	}
	tour.PreviewURL = preview

	if !tour.IsUnlocked {
		tour.FullURL = ""
		return tour, nil
	}
	full, err := tc.Signer.AudioURL(ctx, tour.FullURL)
	if err != nil {
		return tour, err
	}
	tour.FullURL = full
	return tour, nil
}

func (tc *TourController) ListTours(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	tours := session.Store.AudioTours()
	for i := range tours {
		tour, err := tc.withMediaURLs(c.Request.Context(), tours[i])
		if err != nil {
			log.Printf("Failed to sign media for tour %s: %v", tours[i].ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error preparing audio tours"})
			return
		}
		tours[i] = tour
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: tours})
}

func (tc *TourController) GetTour(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	tour, ok := session.Store.AudioTour(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio tour not found"})
		return
	}
	tour, err := tc.withMediaURLs(c.Request.Context(), tour)
	if err != nil {
		log.Printf("Failed to sign media for tour %s: %v", tour.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error preparing audio tour"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: tour})
}

// UnlockTour spends the tour's catalog cost from the user's points.
func (tc *TourController) UnlockTour(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	tour, ok := session.Store.AudioTour(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio tour not found"})
		return
	}

	if !session.Store.UnlockAudioTour(tour.ID, tour.PointsCost) {
		c.JSON(http.StatusPaymentRequired, StandardResponse{
			Success: false,
			Data: gin.H{
				"pointsCost": tour.PointsCost,
				"points":     session.Store.User().Points,
			},
			Message: "Not enough points",
		})
		return
	}

	tour, _ = session.Store.AudioTour(tour.ID)
	tour, err := tc.withMediaURLs(c.Request.Context(), tour)
	if err != nil {
		log.Printf("Failed to sign media for tour %s: %v", tour.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error preparing audio tour"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"tour": tour,
			"user": session.Store.User(),
		},
		Message: "Tour unlocked",
	})
}
