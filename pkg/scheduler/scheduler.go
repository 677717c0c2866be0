package scheduler

import (
	"language_tutor_backend/pkg/database"
	"language_tutor_backend/pkg/logger"
	"language_tutor_backend/pkg/monitoring"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Scheduler struct {
	cron *gocron.Scheduler
	db   *gorm.DB
}

func New(db *gorm.DB) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{cron: s, db: db}
}

// Start 注册周期任务并异步启动。interval 为 0 时只在启动时执行一次诊断。
func (s *Scheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		s.RunDiagnostics()
		return nil
	}

	if _, err := s.cron.Every(interval).StartImmediately().Do(s.RunDiagnostics); err != nil {
		return err
	}
	s.cron.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron.IsRunning() {
		s.cron.Stop()
	}
}

// RunDiagnostics 检查表结构并刷新行数指标
func (s *Scheduler) RunDiagnostics() {
	reports, err := database.Diagnose(s.db)
	if err != nil {
		logger.Log.Error("Database diagnostics failed", zap.Error(err))
		return
	}

	if missing := database.MissingTables(reports); len(missing) > 0 {
		logger.Log.Error("Database tables missing", zap.Strings("tables", missing))
	}

	for _, r := range reports {
		monitoring.TableRows.WithLabelValues(r.Table).Set(float64(r.Rows))
		logger.Log.Debug("table rows", zap.String("table", r.Table), zap.Int64("rows", r.Rows))
	}
}
