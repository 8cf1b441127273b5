package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/medware/medassist/internal/auth"
	"github.com/medware/medassist/internal/cache"
	"github.com/medware/medassist/internal/chat"
	"github.com/medware/medassist/internal/notify"
	"github.com/medware/medassist/internal/repository"
	"github.com/medware/medassist/internal/risk"
	"github.com/medware/medassist/internal/voice"
)

// HealthChecker is what readiness probing needs from the database pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Store interfaces mirror the repository types so handler tests can
// substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *repository.User) error
	ByEmail(ctx context.Context, email string) (*repository.User, error)
	TouchLastLogin(ctx context.Context, email string) error
	Count(ctx context.Context) (total, active int64, err error)
	ListRecent(ctx context.Context, limit int) ([]repository.User, error)
}

type PredictionStore interface {
	Insert(ctx context.Context, p *repository.Prediction) error
	ListByUser(ctx context.Context, email string, limit int) ([]repository.Prediction, error)
	CountByKind(ctx context.Context) (map[string]int64, error)
	CountHighRiskSince(ctx context.Context, since time.Time) (int64, error)
}

type ChatStore interface {
	Insert(ctx context.Context, m *repository.ChatMessage) error
	ListByUser(ctx context.Context, email string, limit int) ([]repository.ChatMessage, error)
	Count(ctx context.Context) (int64, error)
}

// Server bundles everything the HTTP layer needs. Stores are nil when
// the database is disabled; affected endpoints answer 503.
type Server struct {
	Log    *zap.Logger
	Auth   *auth.Service
	Engine *risk.Engine
	Chat   *chat.Service

	ChatCtx *cache.ChatContext // nil without Redis

	Users       UserStore
	Predictions PredictionStore
	Chats       ChatStore

	Hub    *notify.Hub
	Mailer *notify.Mailer
	Voice  *voice.Client

	DB    HealthChecker // nil when ENABLE_DB=false
	Redis HealthChecker // nil when ENABLE_REDIS=false
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
