package configwatcher

import (
	"context"
	"language_tutor_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("ai:\n  model: first\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, dir, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// 等待 watcher 注册完成
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte("ai:\n  model: second\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.AI.Model != "second" {
			t.Errorf("reloaded model = %q, want second", cfg.AI.Model)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("WatchConfig returned %v", err)
	}
}

func TestWatchConfigIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	called := false
	go func() {
		time.Sleep(100 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	}()

	if err := WatchConfig(ctx, dir, func(*config.Config) { called = true }); err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	if called {
		t.Error("reloader called for unrelated file")
	}
}
