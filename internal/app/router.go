package app

import (
	"language_tutor_backend/docs"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/middleware"
	"language_tutor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret, a.services.auth))
	{
		a.registerLearnerRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// 课程目录只读，未登录也可浏览
		public.GET("/languages", c.language.List)
		public.GET("/languages/:id", c.language.Get)
		public.GET("/lessons", c.lesson.List)
		public.GET("/lessons/:id", c.lesson.Get)
		public.GET("/exercises", c.exercise.List)
		public.GET("/exercises/:id", c.exercise.Get)
	}
}

func (a *App) registerLearnerRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/auth/profile", c.auth.Profile)
	group.GET("/auth/me", c.auth.Profile)

	progress := group.Group("/progress")
	{
		progress.GET("", c.progress.GetProgress)
		progress.POST("", c.progress.RecordAttempt)
	}

	group.POST("/lessons/:id/complete", c.lesson.Complete)
	group.GET("/lessons/:id/attempts", c.lesson.Attempts)
	group.POST("/exercises/explain", c.exercise.Explain)

	group.POST("/chat", c.chat.Chat)
	group.DELETE("/chat/history", c.chat.ClearHistory)

	group.GET("/health/diagnostics", c.health.Diagnostics)
}
