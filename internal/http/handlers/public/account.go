package public

import (
	"net/http"
	"strings"

	"github.com/mxshop-next/internal/constants"
	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求（用户名即手机号）
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// LoginRequest 登录请求，username 可填用户名或手机号
type LoginRequest struct {
	Username       string                              `json:"username" binding:"required"`
	Password       string                              `json:"password" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// ProfileRequest 个人信息更新请求，未提交的字段保持不变
type ProfileRequest struct {
	Name     *string `json:"name"`
	Birthday *string `json:"birthday"`
	Gender   *string `json:"gender"`
	Email    *string `json:"email"`
	Mobile   *string `json:"mobile"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, tokens, err := h.AccountService.Register(service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Code:     req.Code,
	})
	if err != nil {
		respondRegisterError(c, err)
		return
	}
	h.setSessionCookie(c, tokens.AccessToken)
	response.Success(c, gin.H{
		"user":  user,
		"token": tokens,
	})
}

// Login 用户名或手机号登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneLogin, req.CaptchaPayload.ToServicePayload()) {
		return
	}

	user, ok := h.AccountService.Authenticate(strings.TrimSpace(req.Username), req.Password)
	if !ok {
		respondError(c, response.CodeUnauthorized, "error.login_invalid", nil)
		return
	}
	tokens, err := h.AccountService.IssueTokenPair(user)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	h.setSessionCookie(c, tokens.AccessToken)
	requestLog(c).Infow("user_login_success", "user_id", user.ID)
	response.Success(c, gin.H{
		"user":  user,
		"token": tokens,
	})
}

// RefreshToken 使用刷新令牌换取新的访问令牌
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	access, expiresAt, err := h.AccountService.Refresh(req.Refresh)
	if err != nil {
		respondError(c, response.CodeUnauthorized, "error.refresh_token_invalid", nil)
		return
	}
	response.Success(c, gin.H{
		"access":            access,
		"access_expires_at": expiresAt,
	})
}

// Logout 清除会话 Cookie；JWT 为无状态令牌，由客户端自行丢弃
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.Success(c, nil)
}

// GetProfile 获取当前用户信息
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.AccountService.GetProfile(uid)
	if err != nil {
		respondWithMappedError(c, err, profileErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, user)
}

// UpdateProfile 更新当前用户信息（PUT / PATCH 语义相同：仅更新提交的字段）
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, err := h.AccountService.UpdateProfile(uid, service.ProfileInput{
		Name:     req.Name,
		Birthday: req.Birthday,
		Gender:   req.Gender,
		Email:    req.Email,
		Mobile:   req.Mobile,
	})
	if err != nil {
		respondWithMappedError(c, err, profileErrorRules, response.CodeInternal, "error.profile_update_failed")
		return
	}
	response.Success(c, user)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	cfg := h.Config.Session
	if strings.TrimSpace(cfg.CookieName) == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, cfg.MaxAge, "/", cfg.Domain, cfg.Secure, cfg.HTTPOnly)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	cfg := h.Config.Session
	if strings.TrimSpace(cfg.CookieName) == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", cfg.Domain, cfg.Secure, cfg.HTTPOnly)
}
