package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleVoicePing(c *gin.Context) {
	if s.Voice == nil || !s.Voice.Enabled() {
		c.JSON(http.StatusOK, gin.H{"status": "disabled"})
		return
	}
	if err := s.Voice.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleVoiceProcess forwards an uploaded audio clip to the speech
// service. A missing or unreachable service yields a degraded answer,
// never a 5xx.
func (s *Server) handleVoiceProcess(c *gin.Context) {
	if s.Voice == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "voice service not configured",
		})
		return
	}
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file required"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read audio file"})
		return
	}

	res := s.Voice.Process(c.Request.Context(), header.Filename, audio)
	c.JSON(http.StatusOK, res)
}
