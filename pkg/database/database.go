package database

import (
	"fmt"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const MemoryPath = ":memory:"

// Models 按依赖顺序列出需要迁移的表
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Language{},
		&model.Lesson{},
		&model.Exercise{},
		&model.AttemptRecord{},
		&model.CompletionRecord{},
	}
}

// Open 只建立连接，不做迁移
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
	}

	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite":
		return openSQLite(cfg.Path, gormCfg)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return gorm.Open(mysql.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if path == "" {
		path = "data/language_tutor.db"
	}

	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
		// 写事务互斥，读不阻塞；busy_timeout 让并发写排队而不是立即报错
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}

	if path == MemoryPath {
		// 每个连接都是独立的内存库，只能保留一个
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// InitDB 打开数据库、迁移表结构，并在表为空时写入种子数据
func InitDB(cfg *config.DatabaseConfig, seed bool) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if seed {
		if err := Seed(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
