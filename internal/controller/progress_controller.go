package controller

import (
	"language_tutor_backend/internal/service"
	"language_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary 获取学习进度
// @Description 返回某门语言每节课的状态（locked / available / in_progress / completed）
// @Tags 学习进度
// @Security ApiKeyAuth
// @Produce json
// @Param languageId query int true "语言ID"
// @Success 200 {object} util.Response{data=model.LanguageProgress}
// @Failure 400 {object} util.Response "缺少 languageId"
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response "语言不存在"
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	languageID, ok := util.ParseID(ctx.Query("languageId"))
	if !ok {
		util.BadRequest(ctx, "Language ID is required")
		return
	}

	progress, err := c.ProgressService.GetProgress(ctx.Request.Context(), userID, languageID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// RecordAttempt godoc
// @Summary 记录一次练习作答
// @Description 每次调用追加一条作答记录，不去重
// @Tags 学习进度
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.AttemptRequest true "作答信息"
// @Success 201 {object} util.Response{data=model.AttemptRecord}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) RecordAttempt(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badBinding(ctx, err)
		return
	}

	record, err := c.ProgressService.RecordAttempt(ctx.Request.Context(), userID, req)
	if err != nil {
		// 开启引用校验时，不存在的练习属于请求错误
		if util.IsNotFound(err) {
			util.BadRequest(ctx, notFoundMessage(err))
			return
		}
		respondError(ctx, err)
		return
	}
	util.Created(ctx, record)
}
