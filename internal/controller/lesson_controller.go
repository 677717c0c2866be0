package controller

import (
	"language_tutor_backend/internal/service"
	"language_tutor_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	CatalogService  *service.CatalogService
	ProgressService *service.ProgressService
}

func NewLessonController(catalogService *service.CatalogService, progressService *service.ProgressService) *LessonController {
	return &LessonController{
		CatalogService:  catalogService,
		ProgressService: progressService,
	}
}

// @Summary 课程列表
// @Description 按 orderIndex 升序返回某门语言的课程
// @Tags 课程目录
// @Produce json
// @Param languageId query int true "语言ID"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Failure 400 {object} util.Response "缺少 languageId"
// @Router /api/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	languageID, ok := util.ParseID(ctx.Query("languageId"))
	if !ok {
		util.BadRequest(ctx, "Language ID is required")
		return
	}

	lessons, err := c.CatalogService.ListLessons(languageID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// @Summary 课程详情
// @Tags 课程目录
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	lesson, err := c.CatalogService.GetLesson(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// Complete godoc
// @Summary 标记课程完成
// @Description 幂等；重复完成返回 alreadyCompleted=true，不会新增记录
// @Tags 学习进度
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.CompletionResult}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/complete [post]
func (c *LessonController) Complete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lessonID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.ProgressService.CompleteLesson(ctx.Request.Context(), userID, lessonID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "Lesson marked as completed"
	if result.AlreadyCompleted {
		message = "Lesson already completed"
	}
	ctx.JSON(http.StatusOK, util.Response{Code: http.StatusOK, Message: message, Data: result})
}

// @Summary 课程作答记录
// @Tags 学习进度
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.AttemptRecord}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/attempts [get]
func (c *LessonController) Attempts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lessonID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.ProgressService.ListAttempts(ctx.Request.Context(), userID, lessonID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, records)
}
