package constants

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码场景常量
const (
	CaptchaSceneLogin   = "login"
	CaptchaSceneSMSSend = "sms_send"
)

// 短信网关常量
const (
	SMSProviderYunpian = "yunpian"
	SMSProviderMock    = "mock"
)

// JWT token 类型
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// 内置角色
const (
	RoleGuest        = "guest"
	RoleMember       = "member"
	RoleCatalogAdmin = "catalog_admin"
)

// Gin 上下文 key
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
)

// 指标结果标签
const (
	MetricResultSuccess = "success"
	MetricResultFailure = "failure"
	MetricResultTimeout = "timeout"
)
