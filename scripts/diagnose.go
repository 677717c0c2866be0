// 手动触发数据库诊断脚本
//
// 该检查已集成到主应用的定时任务中（scheduler.diagnostics_interval_minutes）。
// 此脚本仅用于手动排查，例如部署前确认表结构和种子数据是否就绪。
//
// 用法: go run scripts/diagnose.go [configs]

package main

import (
	"language_tutor_backend/internal/config"
	"language_tutor_backend/pkg/database"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	reports, err := database.Diagnose(db)
	if err != nil {
		log.Fatalf("诊断失败: %v", err)
	}

	out := yaml.NewEncoder(os.Stdout)
	out.SetIndent(2)
	if err := out.Encode(map[string]interface{}{
		"tables":  reports,
		"missing": database.MissingTables(reports),
	}); err != nil {
		log.Fatalf("输出失败: %v", err)
	}

	if missing := database.MissingTables(reports); len(missing) > 0 {
		os.Exit(1)
	}
}
