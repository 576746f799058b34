package sms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/constants"
)

// ErrGatewayTimeout 短信网关在超时时间内未响应
var ErrGatewayTimeout = errors.New("sms gateway timeout")

// GatewayError 短信网关返回的业务错误
type GatewayError struct {
	Code    int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("sms gateway rejected: code=%d msg=%s", e.Code, e.Message)
}

// Sender 短信发送接口
type Sender interface {
	Send(ctx context.Context, mobile, text string) error
}

// New 根据配置创建短信发送器；未知 provider 按 mock 处理
func New(cfg config.SMSConfig) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case constants.SMSProviderYunpian:
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, errors.New("sms.api_key is required for yunpian provider")
		}
		return NewYunpianSender(cfg.APIKey, cfg.Endpoint, time.Duration(cfg.TimeoutMS)*time.Millisecond), nil
	default:
		return NewMockSender(), nil
	}
}
