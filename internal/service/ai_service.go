package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"net/http"
	"strings"
	"sync"
	"time"
)

var ErrAINoChoices = errors.New("AI returned no choices")

// AIService 调用 OpenAI 兼容的 /chat/completions 接口
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: timeoutOf(cfg)},
	}
}

func timeoutOf(cfg config.AIConfig) time.Duration {
	if cfg.Timeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(cfg.Timeout) * time.Second
}

// UpdateConfig 配置热加载时替换 base_url / api_key / model 等参数
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: timeoutOf(cfg)}
}

func (s *AIService) snapshot() (config.AIConfig, *http.Client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.client
}

type ChatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []model.ChatMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
	TopP        float64             `json:"top_p,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message model.ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Chat(ctx context.Context, messages []model.ChatMessage) (string, error) {
	cfg, client := s.snapshot()

	reqBody := ChatCompletionRequest{
		Model:       cfg.Model,
		Messages:    messages,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) > 0 {
		return strings.TrimSpace(result.Choices[0].Message.Content), nil
	}

	return "", ErrAINoChoices
}
