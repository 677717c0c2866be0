package repository

import (
	"context"
	"fmt"
	"language_tutor_backend/internal/model"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func appendTurn(t *testing.T, repo *ChatHistoryRepository, userID uint, n int) {
	t.Helper()
	err := repo.Append(context.Background(), userID,
		model.ChatMessage{Role: "user", Content: fmt.Sprintf("q%d", n)},
		model.ChatMessage{Role: "assistant", Content: fmt.Sprintf("a%d", n)},
	)
	if err != nil {
		t.Fatalf("append turn %d: %v", n, err)
	}
}

func TestChatHistoryKeepsLastTurns(t *testing.T) {
	repo := NewChatHistoryRepository(newTestRedis(t), 3)
	for n := 1; n <= 4; n++ {
		appendTurn(t, repo, 1, n)
	}

	msgs, err := repo.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}

	want := []model.ChatMessage{
		{Role: "user", Content: "q2"}, {Role: "assistant", Content: "a2"},
		{Role: "user", Content: "q3"}, {Role: "assistant", Content: "a3"},
		{Role: "user", Content: "q4"}, {Role: "assistant", Content: "a4"},
	}
	if len(msgs) != len(want) {
		t.Fatalf("recent = %v, want %v", msgs, want)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("msgs[%d] = %+v, want %+v", i, msgs[i], want[i])
		}
	}
}

func TestChatHistoryDropsOrphanedReply(t *testing.T) {
	rdb := newTestRedis(t)
	repo := NewChatHistoryRepository(rdb, 1)
	ctx := context.Background()

	// 单条追加导致边界落在助手回复上
	if err := repo.Append(ctx, 1, model.ChatMessage{Role: "user", Content: "q1"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	appendTurn(t, repo, 1, 2)
	if err := repo.Append(ctx, 1, model.ChatMessage{Role: "user", Content: "q3"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	msgs, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Role != "user" || msgs[0].Content != "q3" {
		t.Errorf("recent = %+v, want only q3", msgs)
	}
}

func TestChatHistoryPerUserAndClear(t *testing.T) {
	repo := NewChatHistoryRepository(newTestRedis(t), 5)
	ctx := context.Background()
	appendTurn(t, repo, 1, 1)
	appendTurn(t, repo, 2, 1)

	if err := repo.Clear(ctx, 1); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if msgs, _ := repo.Recent(ctx, 1); len(msgs) != 0 {
		t.Errorf("user 1 history = %v, want empty", msgs)
	}
	if msgs, _ := repo.Recent(ctx, 2); len(msgs) != 2 {
		t.Errorf("user 2 history = %v, want 2 messages", msgs)
	}
}
