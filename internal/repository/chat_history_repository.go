package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"language_tutor_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

const chatHistoryTTL = 24 * time.Hour

// ChatHistoryRepository 在 redis 中按用户保存最近的对话轮次（一轮 = 用户消息 + 助手回复）。
// rdb 为 nil 时所有操作都是空操作。
type ChatHistoryRepository struct {
	rdb   *redis.Client
	turns int64
}

func NewChatHistoryRepository(rdb *redis.Client, limit int) *ChatHistoryRepository {
	if limit <= 0 {
		limit = 10
	}
	return &ChatHistoryRepository{rdb: rdb, turns: int64(limit)}
}

func (r *ChatHistoryRepository) Enabled() bool {
	return r != nil && r.rdb != nil
}

func (r *ChatHistoryRepository) maxMessages() int64 {
	return 2 * r.turns
}

func chatHistoryKey(userID uint) string {
	return fmt.Sprintf("chat:history:%d", userID)
}

func (r *ChatHistoryRepository) Append(ctx context.Context, userID uint, messages ...model.ChatMessage) error {
	if !r.Enabled() || len(messages) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, data)
	}

	key := chatHistoryKey(userID)
	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -r.maxMessages(), -1)
	pipe.Expire(ctx, key, chatHistoryTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Recent 按时间顺序返回最近的消息
func (r *ChatHistoryRepository) Recent(ctx context.Context, userID uint) ([]model.ChatMessage, error) {
	if !r.Enabled() {
		return nil, nil
	}

	raw, err := r.rdb.LRange(ctx, chatHistoryKey(userID), -r.maxMessages(), -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]model.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var m model.ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		// 截断后开头若是失去提问的回复，丢弃
		if len(messages) == 0 && m.Role != "user" {
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *ChatHistoryRepository) Clear(ctx context.Context, userID uint) error {
	if !r.Enabled() {
		return nil
	}
	return r.rdb.Del(ctx, chatHistoryKey(userID)).Err()
}
