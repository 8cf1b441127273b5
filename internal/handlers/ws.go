package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/medware/medassist/internal/auth"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set an Authorization header on websockets, so the
	// token travels as a query parameter and CORS is open like the rest
	// of the API.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleNotificationsWS upgrades the connection and parks it on the hub.
// Query parameters: token (JWT access token) and role ("user"|"admin").
func (s *Server) handleNotificationsWS(c *gin.Context) {
	token := c.Query("token")
	role := c.DefaultQuery("role", auth.RoleUser)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter required"})
		return
	}
	claims, err := s.Auth.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	if role == auth.RoleAdmin && claims.Role != auth.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	if role == auth.RoleAdmin {
		s.Hub.AddAdmin(conn)
	} else {
		s.Hub.AddUser(claims.Subject, conn)
	}

	// Clients do not send messages; the read loop only detects closure.
	go func() {
		defer func() {
			s.Hub.Remove(conn)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
