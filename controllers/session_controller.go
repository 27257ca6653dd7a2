package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/sessions"
	"github.com/snap-point/tour-guide-api/utils"
)

type SessionController struct {
	Sessions *sessions.Manager
	Tokens   *sessions.TokenIssuer
}

func NewSessionController(manager *sessions.Manager, tokens *sessions.TokenIssuer) *SessionController {
	return &SessionController{Sessions: manager, Tokens: tokens}
}

// StartSession opens a session seeded from the catalog and returns its token.
func (sc *SessionController) StartSession(c *gin.Context) {
	session := sc.Sessions.Start()

	token, err := sc.Tokens.Issue(session.ID)
	if err != nil {
		log.Printf("Failed to issue session token: %v", err)
		_ = sc.Sessions.End(session.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data: gin.H{
			"token":     token,
			"sessionId": session.ID,
			"user":      session.Store.User(),
		},
		Message: "Session started",
	})
}

func (sc *SessionController) EndSession(c *gin.Context) {
	session := utils.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
		return
	}

	if err := sc.Sessions.End(session.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Session ended"})
}
