package service

import (
	"regexp"
	"strings"

	"github.com/mxshop-next/internal/logger"
)

// DefaultMobilePattern 大陆手机号格式
const DefaultMobilePattern = `^1[358]\d{9}$|^147\d{8}$|^176\d{8}$`

// MobilePattern 手机号格式校验
type MobilePattern struct {
	re *regexp.Regexp
}

// NewMobilePattern 编译手机号正则，配置非法时回退到默认格式
func NewMobilePattern(expr string) *MobilePattern {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = DefaultMobilePattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		logger.Warnw("mobile_pattern_invalid", "pattern", expr, "error", err)
		re = regexp.MustCompile(DefaultMobilePattern)
	}
	return &MobilePattern{re: re}
}

// Match 判断手机号是否合法
func (p *MobilePattern) Match(mobile string) bool {
	if p == nil || p.re == nil {
		return false
	}
	return p.re.MatchString(strings.TrimSpace(mobile))
}
