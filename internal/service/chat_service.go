package service

import (
	"context"
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/repository"
	"language_tutor_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

const (
	tutorSystemPrompt = "You are a helpful language tutor. The user is learning a new language. " +
		"Answer clearly, give short examples, and correct mistakes gently."
	fallbackReply = "I'm having trouble connecting to my language model right now. Please try again later."
	emptyReply    = "I'm not sure how to respond to that."
)

// swagger:model ChatRequest
type ChatRequest struct {
	Message string `json:"message" binding:"required,notblank"`
}

type ChatReply struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback,omitempty"`
}

type ChatService struct {
	ai      *AIService
	history *repository.ChatHistoryRepository
}

func NewChatService(ai *AIService, history *repository.ChatHistoryRepository) *ChatService {
	return &ChatService{ai: ai, history: history}
}

// Reply 上游失败时返回兜底回复而不是错误，与前端的约定保持一致
func (s *ChatService) Reply(ctx context.Context, userID uint, message string) *ChatReply {
	message = strings.TrimSpace(message)

	messages := []model.ChatMessage{{Role: "system", Content: tutorSystemPrompt}}

	history, err := s.history.Recent(ctx, userID)
	if err != nil {
		logger.Log.Warn("load chat history failed", zap.Uint("user_id", userID), zap.Error(err))
	}
	messages = append(messages, history...)

	userMsg := model.ChatMessage{Role: "user", Content: message}
	messages = append(messages, userMsg)

	answer, err := s.ai.Chat(ctx, messages)
	if err != nil {
		logger.Log.Error("AI chat failed", zap.Uint("user_id", userID), zap.Error(err))
		return &ChatReply{Reply: fallbackReply, Fallback: true}
	}
	if answer == "" {
		answer = emptyReply
	}

	if err := s.history.Append(ctx, userID, userMsg, model.ChatMessage{Role: "assistant", Content: answer}); err != nil {
		logger.Log.Warn("save chat history failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	return &ChatReply{Reply: answer}
}

func (s *ChatService) ClearHistory(ctx context.Context, userID uint) error {
	return s.history.Clear(ctx, userID)
}
