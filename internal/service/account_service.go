package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/metrics"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RoleAssigner 为新用户分配角色
type RoleAssigner interface {
	AssignUserRole(userID uint, role string) error
}

// AccountService 用户注册、登录与个人信息
type AccountService struct {
	cfg        config.JWTConfig
	userRepo   repository.UserRepository
	verifyCode *VerifyCodeService
	roles      RoleAssigner
}

// NewAccountService 创建账户服务
func NewAccountService(cfg *config.Config, userRepo repository.UserRepository, verifyCode *VerifyCodeService, roles RoleAssigner) *AccountService {
	return &AccountService{
		cfg:        cfg.UserJWT,
		userRepo:   userRepo,
		verifyCode: verifyCode,
		roles:      roles,
	}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair 登录/注册签发的令牌
type TokenPair struct {
	AccessToken      string    `json:"access"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// RegisterInput 注册参数
type RegisterInput struct {
	Username string
	Password string
	Code     string
}

// ProfileInput 个人信息更新参数，nil 字段不修改
type ProfileInput struct {
	Name     *string
	Birthday *string
	Gender   *string
	Email    *string
	Mobile   *string
}

// Register 校验验证码后创建用户并授予 member 角色，成功后作废验证码
func (s *AccountService) Register(input RegisterInput) (*models.User, *TokenPair, error) {
	username := strings.TrimSpace(input.Username)
	code := strings.TrimSpace(input.Code)
	if username == "" {
		return nil, nil, fieldError("username", ErrUsernameRequired)
	}
	if !s.verifyCode.MobilePattern().Match(username) {
		return nil, nil, fieldError("username", ErrInvalidMobile)
	}
	if input.Password == "" {
		return nil, nil, fieldError("password", ErrPasswordRequired)
	}
	if len(code) != s.verifyCode.CodeLength() {
		return nil, nil, fieldError("code", ErrVerifyCodeFormat)
	}

	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, fieldError("username", ErrUsernameTaken)
	}

	if err := s.verifyCode.ValidateCode(username, code); err != nil {
		return nil, nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	mobile := username
	user := &models.User{
		Username:     username,
		Mobile:       &mobile,
		PasswordHash: string(hashedPassword),
		Gender:       models.GenderFemale,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if isUniqueViolation(err) {
			return nil, nil, fieldError("username", ErrUsernameTaken)
		}
		return nil, nil, err
	}

	// 没有 member 角色的账号无法访问任何个人资源，授权失败时回滚已创建的用户，验证码保留可重试
	if s.roles != nil {
		if err := s.roles.AssignUserRole(user.ID, constants.RoleMember); err != nil {
			logger.Errorw("user_role_assign_failed", "user_id", user.ID, "role", constants.RoleMember, "error", err)
			if delErr := s.userRepo.Delete(user.ID); delErr != nil {
				logger.Errorw("user_register_compensate_failed", "user_id", user.ID, "error", delErr)
			}
			return nil, nil, fmt.Errorf("assign member role: %w", err)
		}
	}
	if err := s.verifyCode.ConsumeCode(nil, username); err != nil {
		logger.Warnw("verify_code_consume_failed", "mobile", username, "error", err)
	}
	logger.Infow("user_registered", "user_id", user.ID)

	pair, err := s.IssueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Authenticate 按用户名或手机号校验密码；任何失败都只返回 false
func (s *AccountService) Authenticate(identifier, password string) (*models.User, bool) {
	user, err := s.userRepo.GetByIdentifier(identifier)
	if err != nil {
		logger.Warnw("user_authenticate_lookup_failed", "error", err)
		metrics.Logins.WithLabelValues(constants.MetricResultFailure).Inc()
		return nil, false
	}
	if user == nil || !user.IsActive {
		metrics.Logins.WithLabelValues(constants.MetricResultFailure).Inc()
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.Logins.WithLabelValues(constants.MetricResultFailure).Inc()
		return nil, false
	}
	metrics.Logins.WithLabelValues(constants.MetricResultSuccess).Inc()
	return user, true
}

// IssueTokenPair 签发 access + refresh 令牌
func (s *AccountService) IssueTokenPair(user *models.User) (*TokenPair, error) {
	access, accessExpires, err := s.signToken(user, constants.TokenTypeAccess, s.accessExpireHours())
	if err != nil {
		return nil, err
	}
	refresh, refreshExpires, err := s.signToken(user, constants.TokenTypeRefresh, s.refreshExpireHours())
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExpires,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExpires,
	}, nil
}

// Refresh 使用 refresh 令牌换取新的 access 令牌
func (s *AccountService) Refresh(refreshToken string) (string, time.Time, error) {
	claims, err := s.parseToken(refreshToken, constants.TokenTypeRefresh)
	if err != nil {
		return "", time.Time{}, ErrRefreshTokenInvalid
	}
	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil || !user.IsActive {
		return "", time.Time{}, ErrRefreshTokenInvalid
	}
	return s.signToken(user, constants.TokenTypeAccess, s.accessExpireHours())
}

// ParseAccessToken 解析 access 令牌，refresh 令牌不可作为 access 使用
func (s *AccountService) ParseAccessToken(tokenString string) (*UserJWTClaims, error) {
	claims, err := s.parseToken(tokenString, constants.TokenTypeAccess)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetProfile 获取当前用户信息
func (s *AccountService) GetProfile(userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserDisabled
	}
	return user, nil
}

// UpdateProfile 更新当前用户信息
func (s *AccountService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Birthday != nil {
		birthday := strings.TrimSpace(*input.Birthday)
		if birthday != "" {
			if _, err := time.Parse("2006-01-02", birthday); err != nil {
				return nil, fieldError("birthday", ErrInvalidBirthday)
			}
		}
		user.Birthday = birthday
	}
	if input.Gender != nil {
		gender := strings.TrimSpace(*input.Gender)
		if gender != models.GenderMale && gender != models.GenderFemale {
			return nil, fieldError("gender", ErrInvalidGender)
		}
		user.Gender = gender
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email != "" {
			normalized, err := normalizeEmail(email)
			if err != nil {
				return nil, fieldError("email", err)
			}
			email = normalized
		}
		user.Email = email
	}
	if input.Mobile != nil {
		mobile := strings.TrimSpace(*input.Mobile)
		if !s.verifyCode.MobilePattern().Match(mobile) {
			return nil, fieldError("mobile", ErrInvalidMobile)
		}
		taken, err := s.userRepo.MobileTakenByOther(mobile, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fieldError("mobile", ErrMobileTaken)
		}
		user.Mobile = &mobile
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		if isUniqueViolation(err) {
			return nil, fieldError("mobile", ErrMobileTaken)
		}
		return nil, err
	}
	return user, nil
}

func (s *AccountService) signToken(user *models.User, tokenType string, expireHours int) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (s *AccountService) parseToken(tokenString, tokenType string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.TokenType != tokenType || claims.UserID == 0 {
		return nil, errors.New("token type mismatch")
	}
	return claims, nil
}

func (s *AccountService) accessExpireHours() int {
	if s.cfg.ExpireHours <= 0 {
		return 168
	}
	return s.cfg.ExpireHours
}

func (s *AccountService) refreshExpireHours() int {
	if s.cfg.RefreshExpireHours <= 0 {
		return 720
	}
	return s.cfg.RefreshExpireHours
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
