package controller

import (
	"language_tutor_backend/internal/service"
	"language_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	CatalogService     *service.CatalogService
	ExplanationService *service.ExplanationService
}

func NewExerciseController(catalogService *service.CatalogService, explanationService *service.ExplanationService) *ExerciseController {
	return &ExerciseController{
		CatalogService:     catalogService,
		ExplanationService: explanationService,
	}
}

// @Summary 练习列表
// @Tags 课程目录
// @Produce json
// @Param lessonId query int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Exercise}
// @Failure 400 {object} util.Response "缺少 lessonId"
// @Router /api/exercises [get]
func (c *ExerciseController) List(ctx *gin.Context) {
	lessonID, ok := util.ParseID(ctx.Query("lessonId"))
	if !ok {
		util.BadRequest(ctx, "Lesson ID is required")
		return
	}

	exercises, err := c.CatalogService.ListExercises(lessonID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, exercises)
}

// @Summary 练习详情
// @Tags 课程目录
// @Produce json
// @Param id path int true "练习ID"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Failure 404 {object} util.Response
// @Router /api/exercises/{id} [get]
func (c *ExerciseController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	exercise, err := c.CatalogService.GetExercise(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, exercise)
}

// Explain godoc
// @Summary 答案讲解
// @Tags 课程目录
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.ExplainRequest true "练习ID与用户答案"
// @Success 200 {object} util.Response{data=service.Explanation}
// @Failure 404 {object} util.Response
// @Router /api/exercises/explain [post]
func (c *ExerciseController) Explain(ctx *gin.Context) {
	var req service.ExplainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badBinding(ctx, err)
		return
	}

	explanation, err := c.ExplanationService.Explain(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, explanation)
}
