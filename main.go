// @title Language Tutor API
// @version 1.0
// @description 语言学习应用的后端服务：课程目录、学习进度、AI 对话。

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"language_tutor_backend/internal/app"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/pkg/database"
	"language_tutor_backend/pkg/logger"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := pflag.String("config-dir", "configs", "配置文件所在目录")
	migrateOnly := pflag.Bool("migrate-only", false, "只执行数据库迁移和种子数据，完成后退出")
	seed := pflag.Bool("seed", true, "表为空时写入内置的语言和课程数据")
	pflag.Parse()

	// .env 可选，不存在时忽略
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly
	cfg.SkipSeed = !*seed

	if cfg.MigrateOnly {
		logger.InitLogger(cfg)
		defer logger.Log.Sync()

		db, err := database.InitDB(&cfg.Database, !cfg.SkipSeed)
		if err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	application := app.NewApp(cfg, *configDir)
	defer logger.Log.Sync()

	application.Run()
}
