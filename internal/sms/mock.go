package sms

import (
	"context"
	"sync"

	"github.com/mxshop-next/internal/logger"
)

// SentMessage 记录一次模拟发送
type SentMessage struct {
	Mobile string
	Text   string
}

// MockSender 本地开发用发送器：只记日志，不调用网关
type MockSender struct {
	mu   sync.Mutex
	sent []SentMessage
	err  error
}

// NewMockSender 创建模拟发送器
func NewMockSender() *MockSender {
	return &MockSender{}
}

// FailWith 之后的发送都返回 err（测试用），传 nil 恢复
func (m *MockSender) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Send 实现 Sender
func (m *MockSender) Send(_ context.Context, mobile, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, SentMessage{Mobile: mobile, Text: text})
	logger.Infow("sms_mock_sent", "mobile", mobile, "text", text)
	return nil
}

// Sent 返回已发送消息的副本
func (m *MockSender) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
