package shared

import (
	"errors"

	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/i18n"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(constants.ContextKeyRequestID); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, key)
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondFieldError 返回字段级错误：msg 为翻译后的提示，data.fields 标出出错字段。
// 业务校验失败属于预期分支，只记 debug 日志。
func RespondFieldError(c *gin.Context, code int, key string, err error) bool {
	var fieldErr *service.FieldError
	if !errors.As(err, &fieldErr) {
		return false
	}
	msg := i18n.T(i18n.ResolveLocale(c), key)
	fieldMsg := msg
	if fieldErr.Detail != "" {
		fieldMsg = msg + ": " + fieldErr.Detail
	}
	RequestLog(c).Debugw("handler_field_error", "code", code, "field", fieldErr.Field, "error", err)
	response.ErrorWithFields(c, code, msg, map[string]string{fieldErr.Field: fieldMsg})
	return true
}
