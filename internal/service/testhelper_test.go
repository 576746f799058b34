package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return db
}

func newServiceTestConfig() *config.Config {
	return &config.Config{
		UserJWT: config.JWTConfig{
			SecretKey:          "test-secret",
			ExpireHours:        1,
			RefreshExpireHours: 24,
		},
		SMS: config.SMSConfig{
			Provider: "mock",
			Template: "您的验证码是 %s",
		},
		VerifyCode: config.VerifyCodeConfig{
			Length:              4,
			ExpireMinutes:       5,
			SendIntervalSeconds: 60,
			ConsumeOnUse:        true,
			MobilePattern:       DefaultMobilePattern,
		},
		Catalog: config.CatalogConfig{DefaultPageSize: 10, MaxPageSize: 100},
		Order:   config.OrderConfig{OrderNoMaxRetries: 3},
	}
}

func createServiceTestCategory(t *testing.T, db *gorm.DB, name string, level int, parentID *uint) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Code: name, CategoryType: level, ParentID: parentID}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createServiceTestProduct(t *testing.T, db *gorm.DB, categoryID uint, name, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  categoryID,
		Name:        name,
		ShopPrice:   models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		MarketPrice: models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createServiceTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	mobile := username
	user := &models.User{Username: username, Mobile: &mobile, PasswordHash: "x", Gender: models.GenderFemale, IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}
