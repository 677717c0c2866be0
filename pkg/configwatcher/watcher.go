package configwatcher

import (
	"context"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/pkg/logger"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type ConfigReloader func(cfg *config.Config)

const debounce = time.Second

// WatchConfig 监听配置目录，config.yaml 变化后防抖 1 秒重新加载并回调。
// 阻塞直到 ctx 取消。
func WatchConfig(ctx context.Context, configDir string, reloader ConfigReloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	absDir, err := filepath.Abs(configDir)
	if err != nil {
		return err
	}
	target := config.ConfigFile(absDir)

	// 监听目录而不是文件：编辑器保存时常以重命名替换文件
	if err := watcher.Add(absDir); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				timer.Reset(debounce)
			}
		case <-timer.C:
			newCfg, err := config.LoadConfig(absDir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("file", target))
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
