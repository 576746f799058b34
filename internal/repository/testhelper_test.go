package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mxshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T) *gorm.DB {
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

func createTestCategory(t *testing.T, db *gorm.DB, name string, level int, parentID *uint) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Code: name, CategoryType: level, ParentID: parentID}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uint, name, brief string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  categoryID,
		Name:        name,
		GoodsBrief:  brief,
		ShopPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		MarketPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(price + 10)),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}
