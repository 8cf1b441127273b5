package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medware/medassist/internal/auth"
	"github.com/medware/medassist/internal/repository"
)

// highRiskWindow is the admin dashboard's alert lookback.
const highRiskWindow = 7 * 24 * time.Hour

// handleHistory returns the caller's predictions and chat exchanges.
func (s *Server) handleHistory(c *gin.Context) {
	if !s.dbRequired(c) {
		return
	}
	email := auth.CurrentEmail(c)
	ctx := c.Request.Context()
	limit := queryInt(c, "limit", 50)

	predictions, err := s.Predictions.ListByUser(ctx, email, limit)
	if err != nil {
		s.logger().Error("prediction history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	chats, err := s.Chats.ListByUser(ctx, email, limit)
	if err != nil {
		s.logger().Error("chat history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	if predictions == nil {
		predictions = []repository.Prediction{}
	}
	if chats == nil {
		chats = []repository.ChatMessage{}
	}
	c.JSON(http.StatusOK, gin.H{
		"email":       email,
		"predictions": predictions,
		"chats":       chats,
	})
}

// handleAdminStats aggregates the counters backing the admin dashboard.
func (s *Server) handleAdminStats(c *gin.Context) {
	if !s.dbRequired(c) {
		return
	}
	ctx := c.Request.Context()

	totalUsers, activeUsers, err := s.Users.Count(ctx)
	if err != nil {
		s.logger().Error("user count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	predictionCounts, err := s.Predictions.CountByKind(ctx)
	if err != nil {
		s.logger().Error("prediction count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	highRisk, err := s.Predictions.CountHighRiskSince(ctx, time.Now().Add(-highRiskWindow))
	if err != nil {
		s.logger().Error("high risk count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	chatCount, err := s.Chats.Count(ctx)
	if err != nil {
		s.logger().Error("chat count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	wsUsers, wsAdmins := 0, 0
	if s.Hub != nil {
		wsUsers, wsAdmins = s.Hub.Counts()
	}

	c.JSON(http.StatusOK, gin.H{
		"users": gin.H{
			"total":  totalUsers,
			"active": activeUsers,
		},
		"predictions": gin.H{
			"by_kind":           predictionCounts,
			"high_risk_last_7d": highRisk,
		},
		"chat_messages": chatCount,
		"connections": gin.H{
			"users":  wsUsers,
			"admins": wsAdmins,
		},
	})
}

// handleAdminUsers lists recent registrations.
func (s *Server) handleAdminUsers(c *gin.Context) {
	if !s.dbRequired(c) {
		return
	}
	users, err := s.Users.ListRecent(c.Request.Context(), queryInt(c, "limit", 20))
	if err != nil {
		s.logger().Error("user list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	if users == nil {
		users = []repository.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
