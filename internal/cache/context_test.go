package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*miniredis.Miniredis, *ChatContext) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewChatContext(rdb, nil)
}

func TestChatContext_AppendAndRecent(t *testing.T) {
	_, cc := setupTestCache(t)
	ctx := context.Background()

	cc.Append(ctx, "user@example.com", "I have a headache", "Rest and hydrate.")
	cc.Append(ctx, "user@example.com", "It got worse", "Please see a doctor.")

	turns := cc.Recent(ctx, "user@example.com")
	require.Len(t, turns, 4)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "I have a headache", turns[0].Content)
	assert.Equal(t, "assistant", turns[3].Role)
	assert.Equal(t, "Please see a doctor.", turns[3].Content)
}

func TestChatContext_MissReturnsNil(t *testing.T) {
	_, cc := setupTestCache(t)
	assert.Nil(t, cc.Recent(context.Background(), "nobody@example.com"))
}

func TestChatContext_TrimsToMostRecentTurns(t *testing.T) {
	_, cc := setupTestCache(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		cc.Append(ctx, "user@example.com", "message", "reply")
	}
	turns := cc.Recent(ctx, "user@example.com")
	assert.Len(t, turns, maxTurns)
}

func TestChatContext_IsolatedPerUser(t *testing.T) {
	_, cc := setupTestCache(t)
	ctx := context.Background()

	cc.Append(ctx, "a@example.com", "hello", "hi")
	assert.Nil(t, cc.Recent(ctx, "b@example.com"))
}

func TestChatContext_Clear(t *testing.T) {
	_, cc := setupTestCache(t)
	ctx := context.Background()

	cc.Append(ctx, "user@example.com", "hello", "hi")
	cc.Clear(ctx, "user@example.com")
	assert.Nil(t, cc.Recent(ctx, "user@example.com"))
}

func TestChatContext_TTLSet(t *testing.T) {
	mr, cc := setupTestCache(t)
	ctx := context.Background()

	cc.Append(ctx, "user@example.com", "hello", "hi")
	require.True(t, mr.Exists("medassist:chat:user@example.com:context"))

	mr.FastForward(contextTTL + 1)
	assert.Nil(t, cc.Recent(ctx, "user@example.com"))
}

func TestChatContext_NilClientIsNoop(t *testing.T) {
	cc := NewChatContext(nil, nil)
	ctx := context.Background()
	cc.Append(ctx, "user@example.com", "hello", "hi")
	assert.Nil(t, cc.Recent(ctx, "user@example.com"))
}
