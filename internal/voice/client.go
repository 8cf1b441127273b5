package voice

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ProcessResult is what the speech service returns for one utterance.
type ProcessResult struct {
	Success    bool   `json:"success"`
	Transcript string `json:"transcript,omitempty"`
	Intent     string `json:"intent,omitempty"`
	Language   string `json:"language,omitempty"`
	ReplyText  string `json:"reply_text,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Client is a thin wrapper over the external voice/speech microservice.
// When no base URL is configured, or the service is unreachable, calls
// return a degraded result instead of failing the request.
type Client struct {
	http    *resty.Client
	baseURL string
	log     *zap.Logger
}

func NewClient(baseURL, apiKey string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(1)
	if apiKey != "" {
		c.SetHeader("Authorization", "Bearer "+apiKey)
	}
	return &Client{http: c, baseURL: baseURL, log: log}
}

// Enabled reports whether a speech service endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Ping checks that the speech service answers.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return fmt.Errorf("voice service not configured")
	}
	resp, err := c.http.R().SetContext(ctx).Get(c.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("voice service ping: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("voice service ping: status %d", resp.StatusCode())
	}
	return nil
}

// Process uploads raw audio and returns the service's transcript and
// reply. The filename is forwarded so the service can sniff the format.
func (c *Client) Process(ctx context.Context, filename string, audio []byte) ProcessResult {
	if !c.Enabled() {
		return degraded("voice service not configured")
	}

	var out ProcessResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("audio", filename, bytes.NewReader(audio)).
		SetResult(&out).
		Post(c.baseURL + "/process")
	if err != nil {
		c.log.Warn("voice service unreachable", zap.Error(err))
		return degraded("voice service unreachable")
	}
	if resp.IsError() {
		c.log.Warn("voice service error", zap.Int("status", resp.StatusCode()))
		return degraded(fmt.Sprintf("voice service error: status %d", resp.StatusCode()))
	}
	out.Success = true
	return out
}

func degraded(reason string) ProcessResult {
	return ProcessResult{
		Success:   false,
		Error:     reason,
		ReplyText: "The voice assistant is currently unavailable. Please type your question instead.",
	}
}
