package controller

import (
	"errors"
	"language_tutor_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 服务层错误到 HTTP 状态码的统一映射
func respondError(ctx *gin.Context, err error) {
	switch {
	case util.IsNotFound(err):
		util.NotFound(ctx, notFoundMessage(err))
	case errors.Is(err, util.ErrExerciseLessonMismatch):
		util.BadRequest(ctx, "Exercise does not belong to this lesson")
	default:
		util.LogInternalError(ctx, err)
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, util.ErrLanguageNotFound):
		return "Language not found"
	case errors.Is(err, util.ErrLessonNotFound):
		return "Lesson not found"
	case errors.Is(err, util.ErrExerciseNotFound):
		return "Exercise not found"
	case errors.Is(err, util.ErrUserNotFound):
		return "User not found"
	}
	return ""
}

// badBinding 请求体校验失败时返回 400，带上字段名
func badBinding(ctx *gin.Context, err error) {
	field, msg := bindingMessage(err)
	if field == "" {
		util.BadRequest(ctx, msg)
		return
	}
	util.FieldError(ctx, field, msg)
}

func idParam(ctx *gin.Context, name string) (uint, bool) {
	id, ok := util.ParseID(ctx.Param(name))
	if !ok {
		util.Error(ctx, http.StatusBadRequest, "Invalid "+name)
	}
	return id, ok
}

func currentUserID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return claims.UserID, true
}
