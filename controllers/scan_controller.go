package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/catalog"
	"github.com/snap-point/tour-guide-api/models"
	"github.com/snap-point/tour-guide-api/utils"
)

type ScanController struct {
	Catalog *catalog.Catalog
	Now     func() time.Time
}

func NewScanController(c *catalog.Catalog) *ScanController {
	return &ScanController{Catalog: c, Now: time.Now}
}

// Scan claims the reward behind a QR payload. Points are credited once per
// attraction; repeat scans succeed without awarding anything.
func (sc *ScanController) Scan(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reward, err := sc.Catalog.ResolvePayload(req.Data)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not recognized"})
		return
	}
	if !reward.IsActive(sc.Now()) {
		c.JSON(http.StatusGone, gin.H{"error": "Reward has expired"})
		return
	}

	attraction, ok := session.Store.Attraction(reward.AttractionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attraction not found"})
		return
	}

	awarded := 0
	alreadyScanned := !session.Store.ClaimQrCode(reward.AttractionID, reward.PointsAwarded)
	if !alreadyScanned {
		awarded = reward.PointsAwarded
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"reward":         reward,
			"attraction":     attraction,
			"pointsAwarded":  awarded,
			"alreadyScanned": alreadyScanned,
			"user":           session.Store.User(),
		},
	})
}

// ListRewards returns the rewards that can still be claimed.
func (sc *ScanController) ListRewards(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	rewards := session.Store.ActiveRewards(sc.Now())
	if rewards == nil {
		rewards = []models.QrCodeReward{}
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: rewards})
}
