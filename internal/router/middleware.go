package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mxshop-next/internal/authz"
	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/i18n"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = constants.ContextKeyRequestID
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
			"X-Request-ID",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// AccessTokenParser 解析用户访问令牌
type AccessTokenParser interface {
	ParseAccessToken(tokenString string) (*service.UserJWTClaims, error)
}

// UserLookup 按 ID 查询用户
type UserLookup interface {
	GetByID(id uint) (*models.User, error)
}

// UserAuthMiddleware 用户鉴权中间件
// 令牌来源：Authorization: Bearer <jwt> / JWT <jwt>，缺省时读取登录写入的会话 Cookie。
// required=false 时未携带令牌的请求以匿名身份放行，由 RBAC 决定能否访问。
func UserAuthMiddleware(tokens AccessTokenParser, users UserLookup, cookieName string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil || users == nil {
			abortWithKey(c, response.CodeUnauthorized, "error.token_invalid")
			return
		}

		tokenString, headerKey := extractAccessToken(c, cookieName)
		if headerKey != "" {
			abortWithKey(c, response.CodeUnauthorized, headerKey)
			return
		}
		if tokenString == "" {
			if required {
				abortWithKey(c, response.CodeUnauthorized, "error.auth_header_missing")
				return
			}
			c.Next()
			return
		}

		claims, err := tokens.ParseAccessToken(tokenString)
		if err != nil || claims.UserID == 0 {
			abortWithKey(c, response.CodeUnauthorized, "error.token_invalid")
			return
		}
		user, err := users.GetByID(claims.UserID)
		if err != nil || user == nil {
			abortWithKey(c, response.CodeUnauthorized, "error.token_invalid")
			return
		}
		if !user.IsActive {
			abortWithKey(c, response.CodeUnauthorized, "error.user_disabled")
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// extractAccessToken 返回令牌；请求头格式非法时返回错误消息 key
func extractAccessToken(c *gin.Context, cookieName string) (string, string) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "JWT") || strings.TrimSpace(parts[1]) == "" {
			return "", "error.auth_header_invalid"
		}
		return strings.TrimSpace(parts[1]), ""
	}
	if strings.TrimSpace(cookieName) == "" {
		return "", ""
	}
	value, err := c.Cookie(cookieName)
	if err != nil {
		return "", ""
	}
	return strings.TrimSpace(value), ""
}

// UserRBACMiddleware 路由级 RBAC 鉴权：匿名请求按 anonymous 主体判定
func UserRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authzService == nil {
			logger.Errorw("user_rbac_service_unavailable")
			abortWithKey(c, response.CodeUnauthorized, "error.unauthorized")
			return
		}

		var userID uint
		if value, ok := c.Get(constants.ContextKeyUserID); ok {
			if id, typeOK := value.(uint); typeOK {
				userID = id
			}
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}

		allowed, err := authzService.EnforceUser(userID, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("user_rbac_enforce_failed",
				"user_id", userID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			abortWithKey(c, response.CodeInternal, "error.internal")
			return
		}
		if !allowed {
			if userID == 0 {
				abortWithKey(c, response.CodeUnauthorized, "error.unauthorized")
				return
			}
			logger.Warnw("user_rbac_permission_denied",
				"user_id", userID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"resource", authz.NormalizeObject(resource),
			)
			abortWithKey(c, response.CodeForbidden, "error.forbidden")
			return
		}

		c.Next()
	}
}

func abortWithKey(c *gin.Context, code int, key string) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	response.Error(c, code, msg)
	c.Abort()
}
