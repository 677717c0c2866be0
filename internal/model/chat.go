package model

// ChatMessage 与 OpenAI 兼容接口的消息格式一致
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
