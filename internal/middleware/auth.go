package middleware

import (
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/util"
	"language_tutor_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLookup 确认 token 对应的用户仍然存在
type UserLookup interface {
	FindUser(id uint) (*model.User, error)
}

func AuthMiddleware(secret string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if _, err := users.FindUser(claims.UserID); err != nil {
			if !util.IsNotFound(err) {
				util.LogInternalError(c, err)
				c.Abort()
				return
			}
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, claims)
		c.Next()
	}
}
