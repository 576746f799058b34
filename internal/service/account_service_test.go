package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
	"github.com/mxshop-next/internal/sms"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type recordingRoleAssigner struct {
	assigned map[uint]string
}

func (r *recordingRoleAssigner) AssignUserRole(userID uint, role string) error {
	if r.assigned == nil {
		r.assigned = map[uint]string{}
	}
	r.assigned[userID] = role
	return nil
}

type failingRoleAssigner struct {
	err error
}

func (r failingRoleAssigner) AssignUserRole(uint, string) error {
	return r.err
}

func setupAccountServiceTest(t *testing.T) (*AccountService, *recordingRoleAssigner, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t)
	cfg := newServiceTestConfig()
	userRepo := repository.NewUserRepository(db)
	verify := NewVerifyCodeService(cfg, userRepo, repository.NewVerifyCodeRepository(db), sms.NewMockSender())
	roles := &recordingRoleAssigner{}
	return NewAccountService(cfg, userRepo, verify, roles), roles, db
}

func issueTestCode(t *testing.T, db *gorm.DB, mobile, code string) {
	t.Helper()
	if err := db.Create(&models.VerifyCode{Mobile: mobile, Code: code, AddTime: time.Now()}).Error; err != nil {
		t.Fatalf("create verify code failed: %v", err)
	}
}

func TestRegisterCreatesUserAndConsumesCode(t *testing.T) {
	svc, roles, db := setupAccountServiceTest(t)
	issueTestCode(t, db, "13800138000", "1234")

	user, pair, err := svc.Register(RegisterInput{Username: "13800138000", Password: "secret", Code: "1234"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 || user.MobileValue() != "13800138000" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", pair)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")) != nil {
		t.Fatalf("password should be stored as bcrypt hash")
	}
	if roles.assigned[user.ID] != constants.RoleMember {
		t.Fatalf("expected member role assigned, got %+v", roles.assigned)
	}

	var count int64
	if err := db.Model(&models.VerifyCode{}).Where("mobile = ?", "13800138000").Count(&count).Error; err != nil {
		t.Fatalf("count codes failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("code should be consumed after register, remaining=%d", count)
	}

	_, _, err = svc.Register(RegisterInput{Username: "13800138000", Password: "secret", Code: "1234"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterCodeReplayRejected(t *testing.T) {
	svc, _, db := setupAccountServiceTest(t)
	issueTestCode(t, db, "13800138010", "4321")

	if _, _, err := svc.Register(RegisterInput{Username: "13800138010", Password: "secret", Code: "4321"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := svc.verifyCode.ValidateCode("13800138010", "4321"); !errors.Is(err, ErrVerifyCodeNotIssued) {
		t.Fatalf("replayed code should be rejected, got %v", err)
	}
}

func TestRegisterRollsBackWhenRoleGrantFails(t *testing.T) {
	db := openServiceTestDB(t)
	cfg := newServiceTestConfig()
	userRepo := repository.NewUserRepository(db)
	verify := NewVerifyCodeService(cfg, userRepo, repository.NewVerifyCodeRepository(db), sms.NewMockSender())
	grantErr := errors.New("casbin down")
	svc := NewAccountService(cfg, userRepo, verify, failingRoleAssigner{err: grantErr})
	issueTestCode(t, db, "13800138020", "5678")

	user, pair, err := svc.Register(RegisterInput{Username: "13800138020", Password: "secret", Code: "5678"})
	if !errors.Is(err, grantErr) {
		t.Fatalf("expected role grant error, got %v", err)
	}
	if user != nil || pair != nil {
		t.Fatalf("failed registration must not return user or tokens")
	}
	var users int64
	db.Model(&models.User{}).Where("username = ?", "13800138020").Count(&users)
	if users != 0 {
		t.Fatalf("user row should be removed, got %d", users)
	}
	if err := verify.ValidateCode("13800138020", "5678"); err != nil {
		t.Fatalf("code should stay valid for retry: %v", err)
	}

	roles := &recordingRoleAssigner{}
	retry := NewAccountService(cfg, userRepo, verify, roles)
	user, _, err = retry.Register(RegisterInput{Username: "13800138020", Password: "secret", Code: "5678"})
	if err != nil {
		t.Fatalf("retry register failed: %v", err)
	}
	if roles.assigned[user.ID] != constants.RoleMember {
		t.Fatalf("retry should grant member role, got %+v", roles.assigned)
	}
}

func TestRegisterUsesConfiguredCodeLength(t *testing.T) {
	db := openServiceTestDB(t)
	cfg := newServiceTestConfig()
	cfg.VerifyCode.Length = 6
	userRepo := repository.NewUserRepository(db)
	verify := NewVerifyCodeService(cfg, userRepo, repository.NewVerifyCodeRepository(db), sms.NewMockSender())
	svc := NewAccountService(cfg, userRepo, verify, &recordingRoleAssigner{})

	if _, err := verify.RequestCode(context.Background(), "13800138030"); err != nil {
		t.Fatalf("request code failed: %v", err)
	}
	var issued models.VerifyCode
	if err := db.Where("mobile = ?", "13800138030").First(&issued).Error; err != nil {
		t.Fatalf("load issued code failed: %v", err)
	}
	if len(issued.Code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", issued.Code)
	}
	if _, _, err := svc.Register(RegisterInput{Username: "13800138030", Password: "secret", Code: "1234"}); !errors.Is(err, ErrVerifyCodeFormat) {
		t.Fatalf("4-digit code should be rejected when length is 6, got %v", err)
	}
	if _, _, err := svc.Register(RegisterInput{Username: "13800138030", Password: "secret", Code: issued.Code}); err != nil {
		t.Fatalf("register with issued code failed: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, db := setupAccountServiceTest(t)
	issueTestCode(t, db, "13800138001", "1234")

	cases := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{name: "missing username", input: RegisterInput{Password: "x", Code: "1234"}, want: ErrUsernameRequired},
		{name: "username not mobile", input: RegisterInput{Username: "alice", Password: "x", Code: "1234"}, want: ErrInvalidMobile},
		{name: "missing password", input: RegisterInput{Username: "13800138001", Code: "1234"}, want: ErrPasswordRequired},
		{name: "short code", input: RegisterInput{Username: "13800138001", Password: "x", Code: "123"}, want: ErrVerifyCodeFormat},
		{name: "wrong code", input: RegisterInput{Username: "13800138001", Password: "x", Code: "9999"}, want: ErrVerifyCodeMismatch},
		{name: "no code issued", input: RegisterInput{Username: "13800138002", Password: "x", Code: "1234"}, want: ErrVerifyCodeNotIssued},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.Register(tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, db := setupAccountServiceTest(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	mobile := "13800138003"
	active := &models.User{Username: "bob", Mobile: &mobile, PasswordHash: string(hash), Gender: models.GenderMale, IsActive: true}
	if err := db.Create(active).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	disabled := &models.User{Username: "carol", PasswordHash: string(hash), Gender: models.GenderFemale, IsActive: true}
	if err := db.Create(disabled).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := db.Model(disabled).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	if user, ok := svc.Authenticate("bob", "secret"); !ok || user.ID != active.ID {
		t.Fatalf("username login should succeed")
	}
	if user, ok := svc.Authenticate(mobile, "secret"); !ok || user.ID != active.ID {
		t.Fatalf("mobile login should succeed")
	}
	if _, ok := svc.Authenticate("bob", "wrong"); ok {
		t.Fatalf("wrong password should fail")
	}
	if _, ok := svc.Authenticate("nobody", "secret"); ok {
		t.Fatalf("unknown user should fail")
	}
	if _, ok := svc.Authenticate("carol", "secret"); ok {
		t.Fatalf("inactive user should fail")
	}
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc, _, db := setupAccountServiceTest(t)
	user := createServiceTestUser(t, db, "13800138004")

	pair, err := svc.IssueTokenPair(user)
	if err != nil {
		t.Fatalf("issue token pair failed: %v", err)
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil || claims.UserID != user.ID {
		t.Fatalf("access token should parse, claims=%+v err=%v", claims, err)
	}
	if _, err := svc.ParseAccessToken(pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("refresh token must not be accepted as access token, got %v", err)
	}
	if _, _, err := svc.Refresh(pair.AccessToken); !errors.Is(err, ErrRefreshTokenInvalid) {
		t.Fatalf("access token must not refresh, got %v", err)
	}

	access, expiresAt, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if access == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("unexpected refreshed token: %q %v", access, expiresAt)
	}
	if _, err := svc.ParseAccessToken(access); err != nil {
		t.Fatalf("refreshed access token should parse: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _, db := setupAccountServiceTest(t)
	user := createServiceTestUser(t, db, "13800138005")
	createServiceTestUser(t, db, "13800138006")

	name := "小明"
	birthday := "1990-01-02"
	gender := models.GenderMale
	email := "Ming@Example.com"
	updated, err := svc.UpdateProfile(user.ID, ProfileInput{Name: &name, Birthday: &birthday, Gender: &gender, Email: &email})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Name != name || updated.Birthday != birthday || updated.Gender != gender || updated.Email != "ming@example.com" {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	badGender := "other"
	if _, err := svc.UpdateProfile(user.ID, ProfileInput{Gender: &badGender}); !errors.Is(err, ErrInvalidGender) {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}
	badBirthday := "1990/01/02"
	if _, err := svc.UpdateProfile(user.ID, ProfileInput{Birthday: &badBirthday}); !errors.Is(err, ErrInvalidBirthday) {
		t.Fatalf("expected ErrInvalidBirthday, got %v", err)
	}
	badEmail := "not-an-email"
	if _, err := svc.UpdateProfile(user.ID, ProfileInput{Email: &badEmail}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	taken := "13800138006"
	if _, err := svc.UpdateProfile(user.ID, ProfileInput{Mobile: &taken}); !errors.Is(err, ErrMobileTaken) {
		t.Fatalf("expected ErrMobileTaken, got %v", err)
	}
	if _, err := svc.GetProfile(9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
