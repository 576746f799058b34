package public

import (
	"strings"

	"github.com/mxshop-next/internal/constants"
	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SendVerifyCodeRequest 发送短信验证码请求
type SendVerifyCodeRequest struct {
	Mobile         string                              `json:"mobile"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// SendVerifyCode 发送注册短信验证码
func (h *Handler) SendVerifyCode(c *gin.Context) {
	var req SendVerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneSMSSend, req.CaptchaPayload.ToServicePayload()) {
		return
	}

	mobile, err := h.VerifyCodeService.RequestCode(c.Request.Context(), strings.TrimSpace(req.Mobile))
	if err != nil {
		respondSendVerifyCodeError(c, err)
		return
	}
	response.Success(c, gin.H{"mobile": mobile})
}
