package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	PredictionHeart     = "heart"
	PredictionAlzheimer = "alzheimer"
)

type Prediction struct {
	ID             uuid.UUID       `json:"id"`
	UserEmail      string          `json:"user_email"`
	Kind           string          `json:"kind"`
	Prediction     string          `json:"prediction"`
	RiskLevel      string          `json:"risk_level"`
	RiskPercentage float64         `json:"risk_percentage"`
	Confidence     float64         `json:"confidence"`
	ModelUsed      string          `json:"model_used"`
	Details        json.RawMessage `json:"details,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Predictions struct {
	db Querier
}

func NewPredictions(db Querier) *Predictions {
	return &Predictions{db: db}
}

// Insert stores one assessment result, assigning the ID and timestamp.
func (r *Predictions) Insert(ctx context.Context, p *Prediction) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO predictions (id, user_email, kind, prediction, risk_level, risk_percentage, confidence, model_used, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserEmail, p.Kind, p.Prediction, p.RiskLevel, p.RiskPercentage,
		p.Confidence, p.ModelUsed, p.Details, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

// ListByUser returns the user's predictions, newest first.
func (r *Predictions) ListByUser(ctx context.Context, email string, limit int) ([]Prediction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, user_email, kind, prediction, risk_level, risk_percentage, confidence, model_used, details, created_at
		 FROM predictions WHERE user_email = $1 ORDER BY created_at DESC LIMIT $2`,
		email, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var out []Prediction
	for rows.Next() {
		var p Prediction
		if err := rows.Scan(&p.ID, &p.UserEmail, &p.Kind, &p.Prediction, &p.RiskLevel,
			&p.RiskPercentage, &p.Confidence, &p.ModelUsed, &p.Details, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountByKind returns per-kind prediction totals for the admin dashboard.
func (r *Predictions) CountByKind(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT kind, count(*) FROM predictions GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count predictions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan prediction count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// CountHighRiskSince counts high-risk assessments made after the cutoff,
// feeding the admin alert panel.
func (r *Predictions) CountHighRiskSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM predictions WHERE risk_level = 'High' AND created_at >= $1`,
		since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count high risk: %w", err)
	}
	return n, nil
}
