package public

import (
	"errors"

	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

// respondWithMappedError 命中规则时按规则响应（字段错误带 data.fields），
// 未命中时按兜底码响应并记录原始错误。
func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			if handlershared.RespondFieldError(c, rule.code, rule.key, err) {
				return
			}
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var captchaErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
	{target: service.ErrCaptchaConfigInvalid, code: response.CodeBadRequest, key: "error.captcha_unavailable"},
}

var verifyCodeSendErrorRules = []mappedHandlerError{
	{target: service.ErrMobileRegistered, code: response.CodeConflict, key: "error.mobile_registered"},
	{target: service.ErrInvalidMobile, code: response.CodeBadRequest, key: "error.mobile_invalid"},
	{target: service.ErrVerifyCodeTooFrequent, code: response.CodeTooManyRequests, key: "error.verify_code_too_frequent"},
	{target: service.ErrSMSGatewayTimeout, code: response.CodeGatewayTimeout, key: "error.sms_gateway_timeout"},
	{target: service.ErrSMSGatewayFailed, code: response.CodeBadGateway, key: "error.sms_gateway_failed"},
}

var verifyCodeCheckErrorRules = []mappedHandlerError{
	{target: service.ErrVerifyCodeFormat, code: response.CodeBadRequest, key: "error.verify_code_format"},
	{target: service.ErrVerifyCodeNotIssued, code: response.CodeBadRequest, key: "error.verify_code_not_issued"},
	{target: service.ErrVerifyCodeExpired, code: response.CodeBadRequest, key: "error.verify_code_expired"},
	{target: service.ErrVerifyCodeMismatch, code: response.CodeBadRequest, key: "error.verify_code_mismatch"},
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrUsernameRequired, code: response.CodeBadRequest, key: "error.username_required"},
	{target: service.ErrPasswordRequired, code: response.CodeBadRequest, key: "error.password_required"},
	{target: service.ErrInvalidMobile, code: response.CodeBadRequest, key: "error.mobile_invalid"},
	{target: service.ErrUsernameTaken, code: response.CodeConflict, key: "error.username_taken"},
}

var profileErrorRules = []mappedHandlerError{
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
	{target: service.ErrInvalidBirthday, code: response.CodeBadRequest, key: "error.birthday_invalid"},
	{target: service.ErrInvalidGender, code: response.CodeBadRequest, key: "error.gender_invalid"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrInvalidMobile, code: response.CodeBadRequest, key: "error.mobile_invalid"},
	{target: service.ErrMobileTaken, code: response.CodeConflict, key: "error.mobile_taken"},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrInvalidOrdering, code: response.CodeBadRequest, key: "error.ordering_invalid"},
	{target: service.ErrInvalidPriceFilter, code: response.CodeBadRequest, key: "error.price_filter_invalid"},
}

var productCreateErrorRules = []mappedHandlerError{
	{target: service.ErrProductNameRequired, code: response.CodeBadRequest, key: "error.product_name_required"},
	{target: service.ErrProductPriceInvalid, code: response.CodeBadRequest, key: "error.product_price_invalid"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrCategoryCycle, code: response.CodeBadRequest, key: "error.category_cycle"},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartNumsInvalid, code: response.CodeBadRequest, key: "error.cart_nums_invalid"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrAddressInvalid, code: response.CodeBadRequest, key: "error.address_invalid"},
	{target: service.ErrInvalidMobile, code: response.CodeBadRequest, key: "error.mobile_invalid"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderNoConflict, code: response.CodeConflict, key: "error.order_no_conflict"},
}

var favoriteErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrAlreadyFavorited, code: response.CodeConflict, key: "error.already_favorited"},
	{target: service.ErrFavoriteNotFound, code: response.CodeNotFound, key: "error.favorite_not_found"},
}

var messageErrorRules = []mappedHandlerError{
	{target: service.ErrMessageNotFound, code: response.CodeNotFound, key: "error.message_not_found"},
	{target: service.ErrMessageTypeInvalid, code: response.CodeBadRequest, key: "error.message_type_invalid"},
	{target: service.ErrMessageSubjectRequired, code: response.CodeBadRequest, key: "error.message_subject_required"},
	{target: service.ErrMessageBodyRequired, code: response.CodeBadRequest, key: "error.message_body_required"},
}

var addressErrorRules = []mappedHandlerError{
	{target: service.ErrAddressNotFound, code: response.CodeNotFound, key: "error.address_not_found"},
	{target: service.ErrAddressInvalid, code: response.CodeBadRequest, key: "error.address_invalid"},
	{target: service.ErrInvalidMobile, code: response.CodeBadRequest, key: "error.mobile_invalid"},
}

func respondCaptchaError(c *gin.Context, err error) {
	respondWithMappedError(c, err, captchaErrorRules, response.CodeInternal, "error.captcha_unavailable")
}

func respondSendVerifyCodeError(c *gin.Context, err error) {
	respondWithMappedError(c, err, verifyCodeSendErrorRules, response.CodeInternal, "error.send_verify_code_failed")
}

func respondRegisterError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(registerErrorRules, verifyCodeCheckErrorRules), response.CodeInternal, "error.register_failed")
}
