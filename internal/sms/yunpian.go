package sms

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultYunpianEndpoint = "https://sms.yunpian.com/v2/sms/single_send.json"
	defaultYunpianTimeout  = 5 * time.Second
)

type yunpianResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// YunpianSender 云片单条短信发送
type YunpianSender struct {
	apiKey   string
	endpoint string
	client   *resty.Client
}

// NewYunpianSender 创建云片发送器，timeout<=0 时使用 5 秒
func NewYunpianSender(apiKey, endpoint string, timeout time.Duration) *YunpianSender {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultYunpianEndpoint
	}
	if timeout <= 0 {
		timeout = defaultYunpianTimeout
	}
	return &YunpianSender{
		apiKey:   apiKey,
		endpoint: endpoint,
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json;charset=utf-8"),
	}
}

// Send 发送短信；云片以 code=0 表示成功，非 0 时 msg 为失败原因
func (s *YunpianSender) Send(ctx context.Context, mobile, text string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var result, failure yunpianResponse
	resp, err := s.client.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetFormData(map[string]string{
			"apikey": s.apiKey,
			"mobile": mobile,
			"text":   text,
		}).
		SetResult(&result).
		SetError(&failure).
		Post(s.endpoint)
	if err != nil {
		if isTimeout(err) {
			return ErrGatewayTimeout
		}
		// 网关有响应但不是 JSON
		if resp != nil && resp.StatusCode() != 0 {
			return &GatewayError{Code: resp.StatusCode(), Message: strings.TrimSpace(resp.String())}
		}
		return fmt.Errorf("sms gateway request failed: %w", err)
	}

	if resp.IsError() {
		if failure.Code == 0 {
			return &GatewayError{Code: resp.StatusCode(), Message: strings.TrimSpace(resp.String())}
		}
		return &GatewayError{Code: failure.Code, Message: failure.Msg}
	}
	if result.Code != 0 {
		return &GatewayError{Code: result.Code, Message: result.Msg}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
