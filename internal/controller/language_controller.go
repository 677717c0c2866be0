package controller

import (
	"language_tutor_backend/internal/service"
	"language_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LanguageController struct {
	CatalogService *service.CatalogService
}

func NewLanguageController(catalogService *service.CatalogService) *LanguageController {
	return &LanguageController{CatalogService: catalogService}
}

// @Summary 语言列表
// @Tags 课程目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Language}
// @Router /api/languages [get]
func (c *LanguageController) List(ctx *gin.Context) {
	languages, err := c.CatalogService.ListLanguages()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, languages)
}

// @Summary 语言详情
// @Tags 课程目录
// @Produce json
// @Param id path int true "语言ID"
// @Success 200 {object} util.Response{data=model.Language}
// @Failure 404 {object} util.Response
// @Router /api/languages/{id} [get]
func (c *LanguageController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	language, err := c.CatalogService.GetLanguage(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, language)
}
