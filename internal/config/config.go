package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	AI        AIConfig
	Redis     RedisConfig
	Log       LogConfig
	Progress  ProgressConfig  `mapstructure:"progress"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（通过命令行参数设置）
	MigrateOnly bool `mapstructure:"-"`
	SkipSeed    bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Driver    string // sqlite | mysql
	Path      string
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
	LogLevel  string `mapstructure:"log_level"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type AIConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	Timeout     int     `mapstructure:"timeout_seconds"`
}

type RedisConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Password    string
	DB          int
	HistorySize int `mapstructure:"history_size"`
}

type LogConfig struct {
	File string
}

type ProgressConfig struct {
	// 校验练习是否属于所提交的课程
	VerifyAttemptRefs bool `mapstructure:"verify_attempt_refs"`
}

type SchedulerConfig struct {
	DiagnosticsIntervalMinutes int `mapstructure:"diagnostics_interval_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/language_tutor.db")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("jwt.expire_hours", 168)
	v.SetDefault("ai.base_url", "https://router.huggingface.co/v1")
	v.SetDefault("ai.model", "mistralai/Mixtral-8x7B-Instruct-v0.1")
	v.SetDefault("ai.max_tokens", 250)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.top_p", 0.9)
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.history_size", 10)
	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("scheduler.diagnostics_interval_minutes", 10)
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
}

// LoadConfig reads config.yaml from path. A missing file is not an error:
// defaults and environment variables are enough to boot.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LANGUAGE_TUTOR")
	v.AutomaticEnv()
	setDefaults(v)

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.path", "DATABASE_PATH")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// AI
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("ai.api_key", "AI_API_KEY", "HF_API_KEY")
	v.BindEnv("ai.model", "AI_MODEL")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.JWT.Secret == "" {
		if cfg.Server.Mode == "release" {
			return nil, fmt.Errorf("jwt secret must be set in release mode")
		}
		cfg.JWT.Secret = "dev_only_language_tutor_secret"
	}

	// 生产环境校验 JWT Secret 强度
	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	return &cfg, nil
}

// ConfigFile returns the path LoadConfig reads from dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, "config.yaml")
}
