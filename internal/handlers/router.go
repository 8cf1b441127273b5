package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/medware/medassist/internal/auth"
)

// Routes assembles the full HTTP surface.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "medassist",
			"status":  "running",
		})
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", s.handleReadyz)

	router.POST("/auth/register", s.handleRegister)
	router.POST("/auth/login", s.handleLogin)

	router.POST("/chat-public", s.handleChatPublic)

	authed := router.Group("/", auth.RequireAuth(s.Auth))
	{
		authed.POST("/chat", s.handleChat)
		authed.POST("/predict/heart", s.handlePredictHeart)
		authed.POST("/predict/alzheimer", s.handlePredictAlzheimer)
		authed.GET("/dashboard/history", s.handleHistory)
	}

	admin := router.Group("/admin", auth.RequireAuth(s.Auth), auth.RequireAdmin())
	{
		admin.GET("/stats", s.handleAdminStats)
		admin.GET("/users", s.handleAdminUsers)
	}

	router.GET("/ws/notifications", s.handleNotificationsWS)

	router.GET("/voice-assistant/ping", s.handleVoicePing)
	router.POST("/voice-assistant/process-public", s.handleVoiceProcess)

	return router
}

func (s *Server) handleReadyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	overall := "ok"

	dbStatus := "disabled"
	if s.DB != nil {
		dbStatus = "ok"
		if err := s.DB.Ping(ctx); err != nil {
			dbStatus = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}
	}

	// Redis is advisory: chat context degrades gracefully without it.
	redisStatus := "disabled"
	if s.Redis != nil {
		redisStatus = "ok"
		if err := s.Redis.Ping(ctx); err != nil {
			redisStatus = "unhealthy: " + err.Error()
		}
	}

	c.JSON(status, gin.H{
		"status": overall,
		"db":     dbStatus,
		"redis":  redisStatus,
	})
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// dbRequired guards endpoints that cannot work without persistence.
func (s *Server) dbRequired(c *gin.Context) bool {
	if s.Users == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database disabled"})
		return false
	}
	return true
}
