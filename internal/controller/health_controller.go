package controller

import (
	"language_tutor_backend/internal/util"
	"language_tutor_backend/pkg/database"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}

// @Summary 数据库诊断
// @Description 检查各业务表是否存在及行数
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=[]database.TableReport}
// @Router /api/health/diagnostics [get]
func (c *HealthController) Diagnostics(ctx *gin.Context) {
	reports, err := database.Diagnose(c.DB)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"tables":  reports,
		"missing": database.MissingTables(reports),
	})
}
