package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/metrics"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
	"github.com/mxshop-next/internal/sms"

	"gorm.io/gorm"
)

// VerifyCodeService 短信验证码服务：签发、校验与注册后作废
type VerifyCodeService struct {
	cfg      config.VerifyCodeConfig
	template string
	userRepo repository.UserRepository
	codeRepo repository.VerifyCodeRepository
	sender   sms.Sender
	mobile   *MobilePattern
	now      func() time.Time
}

// NewVerifyCodeService 创建验证码服务
func NewVerifyCodeService(cfg *config.Config, userRepo repository.UserRepository, codeRepo repository.VerifyCodeRepository, sender sms.Sender) *VerifyCodeService {
	return &VerifyCodeService{
		cfg:      cfg.VerifyCode,
		template: cfg.SMS.Template,
		userRepo: userRepo,
		codeRepo: codeRepo,
		sender:   sender,
		mobile:   NewMobilePattern(cfg.VerifyCode.MobilePattern),
		now:      time.Now,
	}
}

// RequestCode 校验手机号后发送验证码，网关成功后才落库
func (s *VerifyCodeService) RequestCode(ctx context.Context, mobile string) (string, error) {
	mobile = strings.TrimSpace(mobile)

	registered, err := s.userRepo.MobileRegistered(mobile)
	if err != nil {
		return "", err
	}
	if registered {
		return "", fieldError("mobile", ErrMobileRegistered)
	}
	if !s.mobile.Match(mobile) {
		return "", fieldError("mobile", ErrInvalidMobile)
	}

	now := s.now()
	latest, err := s.codeRepo.GetLatest(mobile)
	if err != nil {
		return "", err
	}
	if latest != nil && now.Sub(latest.AddTime) < s.sendInterval() {
		return "", fieldError("mobile", ErrVerifyCodeTooFrequent)
	}

	code, err := randomNumericCode(s.CodeLength())
	if err != nil {
		return "", err
	}
	if err := s.send(ctx, mobile, code); err != nil {
		return "", err
	}

	record := &models.VerifyCode{
		Mobile:  mobile,
		Code:    code,
		AddTime: now,
	}
	if err := s.codeRepo.Create(record); err != nil {
		return "", err
	}
	logger.Infow("verify_code_sent", "mobile", mobile)
	return mobile, nil
}

func (s *VerifyCodeService) send(ctx context.Context, mobile, code string) error {
	text := fmt.Sprintf(s.template, code)
	err := s.sender.Send(ctx, mobile, text)
	if err == nil {
		metrics.SMSSent.WithLabelValues(constants.MetricResultSuccess).Inc()
		return nil
	}

	if errors.Is(err, sms.ErrGatewayTimeout) {
		metrics.SMSSent.WithLabelValues(constants.MetricResultTimeout).Inc()
		logger.Warnw("sms_send_timeout", "mobile", mobile)
		return fieldError("mobile", ErrSMSGatewayTimeout)
	}

	metrics.SMSSent.WithLabelValues(constants.MetricResultFailure).Inc()
	logger.Warnw("sms_send_failed", "mobile", mobile, "error", err)
	var gatewayErr *sms.GatewayError
	if errors.As(err, &gatewayErr) {
		return &FieldError{Field: "mobile", Err: ErrSMSGatewayFailed, Detail: gatewayErr.Message}
	}
	return fieldError("mobile", ErrSMSGatewayFailed)
}

// ValidateCode 只读取最近一条验证码做比对，不修改任何记录
func (s *VerifyCodeService) ValidateCode(mobile, code string) error {
	latest, err := s.codeRepo.GetLatest(strings.TrimSpace(mobile))
	if err != nil {
		return err
	}
	if latest == nil {
		return fieldError("code", ErrVerifyCodeNotIssued)
	}
	if s.now().Sub(latest.AddTime) > s.expireAfter() {
		return fieldError("code", ErrVerifyCodeExpired)
	}
	if latest.Code != strings.TrimSpace(code) {
		return fieldError("code", ErrVerifyCodeMismatch)
	}
	return nil
}

// ConsumeCode 作废手机号下的全部验证码；tx 非空时在该事务内执行
func (s *VerifyCodeService) ConsumeCode(tx *gorm.DB, mobile string) error {
	if !s.cfg.ConsumeOnUse {
		return nil
	}
	return s.codeRepo.WithTx(tx).DeleteByMobile(strings.TrimSpace(mobile))
}

// MobilePattern 返回手机号校验器
func (s *VerifyCodeService) MobilePattern() *MobilePattern {
	return s.mobile
}

func (s *VerifyCodeService) sendInterval() time.Duration {
	seconds := s.cfg.SendIntervalSeconds
	if seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func (s *VerifyCodeService) expireAfter() time.Duration {
	minutes := s.cfg.ExpireMinutes
	if minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

// CodeLength 返回验证码位数，配置越界时取 4
func (s *VerifyCodeService) CodeLength() int {
	if s.cfg.Length < 4 || s.cfg.Length > 10 {
		return 4
	}
	return s.cfg.Length
}

func randomNumericCode(length int) (string, error) {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteString(n.String())
	}
	return b.String(), nil
}
