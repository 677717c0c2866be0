package security

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS 仅允许白名单中的 Origin；白名单为空时放行所有来源（不携带凭证）
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}

// Secure 中间件
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 防止MIME嗅探
		c.Header("X-Content-Type-Options", "nosniff")
		// 防止点击劫持
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		// HSTS
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// visitor 包装限流器和最后活跃时间，用于定期清理
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu     sync.Mutex
	store  map[string]*visitor
	limit  rate.Limit
	burst  int
	expiry time.Duration
	stop   chan struct{}
}

// NewRateLimiter 按 IP 限流：window 内最多 maxRequests 次
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = 1
	}
	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &RateLimiter{
		store:  make(map[string]*visitor),
		limit:  rate.Every(window / time.Duration(maxRequests)),
		burst:  maxRequests,
		expiry: expiry,
		stop:   make(chan struct{}),
	}
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	v, exists := l.store[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.store[key] = v
	}
	v.lastSeen = time.Now()
	l.mu.Unlock()

	return v.limiter.Allow()
}

// Cleanup 删除超过 expiry 未活跃的条目
func (l *RateLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.store {
		if time.Since(v.lastSeen) > l.expiry {
			delete(l.store, key)
		}
	}
}

// StartJanitor 每分钟清理一次，直到 Stop
func (l *RateLimiter) StartJanitor() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Cleanup()
			case <-l.stop:
				return
			}
		}
	}()
}

func (l *RateLimiter) Stop() {
	close(l.stop)
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "message": "too many requests"})
			return
		}
		c.Next()
	}
}
