package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Turn is one prior exchange supplied as conversation context.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Completer generates a free-text reply. Implementations may fail; the
// chat service always has the rule-based responder to fall back on.
type Completer interface {
	Complete(ctx context.Context, message string, history []Turn) (string, error)
}

const systemPrompt = `You are a medical AI assistant. You must ONLY handle medical topics.

Your purpose: help the user understand symptoms and provide medication suggestions.

Rules:
- Be concise, structured, and clinically cautious.
- Do NOT provide non-medical content.
- Do NOT claim to be a doctor and do NOT claim you can prescribe. When asked for prescriptions, provide: "prescription options a clinician may consider" and recommend seeing a licensed clinician.
- Always include safety guidance: allergies, contraindications, pregnancy, age, comorbidities, interactions, and "when to seek urgent care".
- If symptoms are severe (chest pain, severe shortness of breath, stroke signs, severe allergic reaction, suicidal ideation), instruct immediate emergency care (911/112).

Output format:
1) Likely issue (brief)
2) Recommended meds (OTC first; then prescription options to discuss with a clinician)
3) Dosage guidance (general ranges, not individualized)
4) Warnings / contraindications
5) When to seek urgent care
6) Next questions (1-3 clarifying questions)`

// contextWindow limits how many prior turns are forwarded to the model.
const contextWindow = 6

// OpenAIClient talks to an OpenAI-compatible completion endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}
}

func (c *OpenAIClient) Complete(ctx context.Context, message string, history []Turn) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	if len(history) > contextWindow {
		history = history[len(history)-contextWindow:]
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat completion: blank reply")
	}
	return reply, nil
}
