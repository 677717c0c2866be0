package controller

import (
	"language_tutor_backend/internal/service"
	"language_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// Chat godoc
// @Summary 与 AI 语言导师对话
// @Description 上游模型不可用时返回兜底回复（fallback=true）
// @Tags AI
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.ChatRequest true "消息"
// @Success 200 {object} util.Response{data=service.ChatReply}
// @Failure 400 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badBinding(ctx, err)
		return
	}

	util.Success(ctx, c.ChatService.Reply(ctx.Request.Context(), userID, req.Message))
}

// @Summary 清空对话历史
// @Tags AI
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/chat/history [delete]
func (c *ChatController) ClearHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.ChatService.ClearHistory(ctx.Request.Context(), userID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Chat history cleared")
}
