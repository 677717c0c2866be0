package app

import (
	"context"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/controller"
	"language_tutor_backend/internal/middleware"
	"language_tutor_backend/internal/repository"
	"language_tutor_backend/internal/service"
	"language_tutor_backend/pkg/configwatcher"
	"language_tutor_backend/pkg/database"
	"language_tutor_backend/pkg/logger"
	"language_tutor_backend/pkg/monitoring"
	"language_tutor_backend/pkg/scheduler"
	"language_tutor_backend/pkg/security"
	"language_tutor_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	ConfigDir string
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client

	services        *services
	limiter         *security.RateLimiter
	scheduler       *scheduler.Scheduler
	tracer          *sdktrace.TracerProvider
	configMu        sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	language    *repository.LanguageRepository
	lesson      *repository.LessonRepository
	exercise    *repository.ExerciseRepository
	completion  *repository.CompletionRepository
	attempt     *repository.AttemptRepository
	chatHistory *repository.ChatHistoryRepository
}

type services struct {
	auth        *service.AuthService
	catalog     *service.CatalogService
	progress    *service.ProgressService
	explanation *service.ExplanationService
	ai          *service.AIService
	chat        *service.ChatService
}

type controllers struct {
	auth     *controller.AuthController
	language *controller.LanguageController
	lesson   *controller.LessonController
	exercise *controller.ExerciseController
	progress *controller.ProgressController
	chat     *controller.ChatController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configMu.Lock()
	defer a.configMu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.configMu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.configMu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		language:    repository.NewLanguageRepository(db),
		lesson:      repository.NewLessonRepository(db),
		exercise:    repository.NewExerciseRepository(db),
		completion:  repository.NewCompletionRepository(db),
		attempt:     repository.NewAttemptRepository(db),
		chatHistory: repository.NewChatHistoryRepository(rdb, cfg.Redis.HistorySize),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.catalog = service.NewCatalogService(repos.language, repos.lesson, repos.exercise)
	s.progress = service.NewProgressService(
		repos.language,
		repos.lesson,
		repos.exercise,
		repos.completion,
		repos.attempt,
		cfg.Progress,
	)
	s.explanation = service.NewExplanationService(s.catalog)
	s.ai = service.NewAIService(cfg.AI)
	s.chat = service.NewChatService(s.ai, repos.chatHistory)

	// 热加载时更新 AI 接口参数
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.ai.UpdateConfig(newCfg.AI)
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		language: controller.NewLanguageController(s.catalog),
		lesson:   controller.NewLessonController(s.catalog, s.progress),
		exercise: controller.NewExerciseController(s.catalog, s.explanation),
		progress: controller.NewProgressController(s.progress),
		chat:     controller.NewChatController(s.chat),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	a.limiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, window)
	a.limiter.StartJanitor()
	router.Use(a.limiter.Middleware())

	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 用已经打开的数据库和（可选的）redis 组装路由。rdb 为 nil 时不保存对话历史。
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()
	controller.RegisterValidators()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

// NewApp 按配置初始化日志、数据库、redis 和追踪后组装应用
func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, !cfg.SkipSeed)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			// 对话历史是可选能力，redis 不可用时降级
			logger.Log.Warn("Redis unavailable, chat history disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := New(cfg, db, rdb)
	app.ConfigDir = configDir

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) startBackgroundTasks(ctx context.Context) {
	a.scheduler = scheduler.New(a.DB)
	interval := time.Duration(a.Config.Scheduler.DiagnosticsIntervalMinutes) * time.Minute
	if err := a.scheduler.Start(interval); err != nil {
		logger.Log.Error("Failed to start scheduler", zap.Error(err))
	}

	if a.ConfigDir != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.ConfigDir, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stopBackground := context.WithCancel(context.Background())
	a.startBackgroundTasks(ctx)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	stopBackground()
	a.scheduler.Stop()
	a.limiter.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
