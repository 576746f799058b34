package service

import "errors"

// 通用
var (
	ErrNotFound = errors.New("resource not found")
)

// 验证码与短信
var (
	ErrMobileRegistered      = errors.New("mobile already registered")
	ErrInvalidMobile         = errors.New("invalid mobile number")
	ErrVerifyCodeTooFrequent = errors.New("verify code requested too frequently")
	ErrVerifyCodeNotIssued   = errors.New("verify code not issued")
	ErrVerifyCodeExpired     = errors.New("verify code expired")
	ErrVerifyCodeMismatch    = errors.New("verify code mismatch")
	ErrVerifyCodeFormat      = errors.New("verify code has invalid length")
	ErrSMSGatewayTimeout     = errors.New("sms gateway timeout")
	ErrSMSGatewayFailed      = errors.New("sms gateway failed")
)

// 账号
var (
	ErrUsernameRequired    = errors.New("username is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrMobileTaken         = errors.New("mobile already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrRefreshTokenInvalid = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserDisabled        = errors.New("user disabled")
	ErrInvalidGender       = errors.New("invalid gender")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidBirthday     = errors.New("invalid birthday")
)

// 商品目录
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductPriceInvalid = errors.New("product price must not be negative")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryCycle       = errors.New("category hierarchy cycle or too deep")
	ErrInvalidOrdering     = errors.New("unsupported ordering")
	ErrInvalidPriceFilter  = errors.New("invalid price filter")
)

// 购物车与订单
var (
	ErrCartNumsInvalid  = errors.New("nums must be at least 1")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNoConflict  = errors.New("order number collision")
)

// 收藏、留言、地址
var (
	ErrAlreadyFavorited       = errors.New("already favorited")
	ErrFavoriteNotFound       = errors.New("favorite not found")
	ErrMessageNotFound        = errors.New("message not found")
	ErrMessageTypeInvalid     = errors.New("invalid message type")
	ErrMessageSubjectRequired = errors.New("message subject is required")
	ErrMessageBodyRequired    = errors.New("message body is required")
	ErrAddressNotFound        = errors.New("address not found")
	ErrAddressInvalid         = errors.New("address is incomplete")
)

// 图片验证码
var (
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha not enabled")
)

// FieldError 将错误归属到请求中的某个字段，响应时放入 data.fields
type FieldError struct {
	Field  string
	Err    error
	Detail string // 外部系统返回的原始说明，如短信网关错误信息
}

func (e *FieldError) Error() string {
	msg := e.Field + ": " + e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
