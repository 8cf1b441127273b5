package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medware/medassist/internal/auth"
	"github.com/medware/medassist/internal/repository"
	"github.com/medware/medassist/internal/triage"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// handleChatPublic answers without authentication and keeps no context.
func (s *Server) handleChatPublic(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	res := s.Chat.Respond(c.Request.Context(), req.Message, nil)
	c.JSON(http.StatusOK, res)
}

// handleChat is the authenticated variant: recent context is pulled from
// the cache and the exchange is persisted.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	email := auth.CurrentEmail(c)
	ctx := c.Request.Context()

	history := s.ChatCtx.Recent(ctx, email)
	res := s.Chat.Respond(ctx, req.Message, history)
	s.ChatCtx.Append(ctx, email, req.Message, res.Reply)

	if s.Chats != nil {
		msg := &repository.ChatMessage{
			UserEmail: email,
			Message:   req.Message,
			Reply:     res.Reply,
			Condition: res.Condition,
			Urgency:   string(res.Urgency),
		}
		if err := s.Chats.Insert(ctx, msg); err != nil {
			s.logger().Warn("chat history insert failed", zap.Error(err))
		}
	}

	if res.Urgency == triage.UrgencyEmergency && s.Hub != nil {
		s.Hub.NotifyAdmins("emergency_chat", gin.H{
			"email":     email,
			"condition": res.Condition,
		})
	}

	c.JSON(http.StatusOK, res)
}
