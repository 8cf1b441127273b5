package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/medware/medassist/internal/chat"
)

const (
	contextKeyFmt = "medassist:chat:%s:context"
	contextTTL    = 30 * time.Minute
	maxTurns      = 10
)

// ChatContext keeps each user's recent chat turns in Redis so the
// assistant can stay coherent across requests. All operations are
// best-effort; a cache outage degrades context, not chat itself.
type ChatContext struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewChatContext(rdb *redis.Client, log *zap.Logger) *ChatContext {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatContext{rdb: rdb, log: log}
}

// Recent returns the stored turns for the user, oldest first. A miss or
// a cache error both return nil.
func (c *ChatContext) Recent(ctx context.Context, email string) []chat.Turn {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, key(email)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		c.log.Warn("chat context read failed", zap.String("email", email), zap.Error(err))
		return nil
	}
	var turns []chat.Turn
	if err := json.Unmarshal(raw, &turns); err != nil {
		c.log.Warn("chat context decode failed", zap.String("email", email), zap.Error(err))
		return nil
	}
	return turns
}

// Append records one user/assistant exchange and refreshes the TTL,
// trimming the history to the most recent turns.
func (c *ChatContext) Append(ctx context.Context, email, message, reply string) {
	if c == nil || c.rdb == nil {
		return
	}
	turns := c.Recent(ctx, email)
	turns = append(turns,
		chat.Turn{Role: "user", Content: message},
		chat.Turn{Role: "assistant", Content: reply},
	)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	raw, err := json.Marshal(turns)
	if err != nil {
		c.log.Warn("chat context encode failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key(email), raw, contextTTL).Err(); err != nil {
		c.log.Warn("chat context write failed", zap.String("email", email), zap.Error(err))
	}
}

// Clear drops the stored context, e.g. when a conversation is reset.
func (c *ChatContext) Clear(ctx context.Context, email string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(email)).Err(); err != nil {
		c.log.Warn("chat context clear failed", zap.String("email", email), zap.Error(err))
	}
}

func key(email string) string {
	return fmt.Sprintf(contextKeyFmt, email)
}
