package scheduler

import (
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"language_tutor_backend/pkg/database"
	"language_tutor_backend/pkg/monitoring"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRunDiagnosticsSetsGauges(t *testing.T) {
	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Path: database.MemoryPath, LogLevel: "silent"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	s := New(db)
	if err := s.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	var languages int64
	db.Model(&model.Language{}).Count(&languages)

	got := testutil.ToFloat64(monitoring.TableRows.WithLabelValues("languages"))
	if got != float64(languages) {
		t.Errorf("languages gauge = %v, want %d", got, languages)
	}
}
