package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/tour-guide-api/sessions"
)

type contextKey string

const SessionContextKey contextKey = "session"

func SetSession(c *gin.Context, s *sessions.Session) {
	c.Set(string(SessionContextKey), s)
}

func GetSession(c *gin.Context) *sessions.Session {
	s, exists := c.Get(string(SessionContextKey))
	if !exists {
		return nil
	}
	if session, ok := s.(*sessions.Session); ok {
		return session
	}
	return nil
}
