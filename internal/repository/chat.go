package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"user_email"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	Condition string    `json:"condition,omitempty"`
	Urgency   string    `json:"urgency"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistory struct {
	db Querier
}

func NewChatHistory(db Querier) *ChatHistory {
	return &ChatHistory{db: db}
}

func (r *ChatHistory) Insert(ctx context.Context, m *ChatMessage) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_history (id, user_email, message, reply, condition, urgency, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.UserEmail, m.Message, m.Reply, m.Condition, m.Urgency, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *ChatHistory) ListByUser(ctx context.Context, email string, limit int) ([]ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, user_email, message, reply, condition, urgency, created_at
		 FROM chat_history WHERE user_email = $1 ORDER BY created_at DESC LIMIT $2`,
		email, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat history: %w", err)
	}
	defer rows.Close()

	var out []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.UserEmail, &m.Message, &m.Reply, &m.Condition, &m.Urgency, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ChatHistory) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM chat_history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count chat history: %w", err)
	}
	return n, nil
}
