//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/mxshop-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	all := models.AllModels()
	dropOrder := make([]interface{}, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		dropOrder = append(dropOrder, all[i])
	}
	_ = db.Migrator().DropTable(dropOrder...)

	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(dropOrder...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresProductSearchCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	category := &models.Category{Name: "生鲜", CategoryType: models.CategoryTypeLevel1}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	productRepo := NewProductRepository(db)
	product := &models.Product{
		CategoryID: category.ID,
		Name:       "Kiwi",
		GoodsBrief: "New Zealand GOLDEN kiwi",
		ShopPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(99)),
	}
	if err := productRepo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	for _, search := range []string{"kiwi", "golden"} {
		rows, total, err := productRepo.List(ProductListFilter{Page: 1, PageSize: 10, Search: search})
		if err != nil {
			t.Fatalf("product search %q failed: %v", search, err)
		}
		if total != 1 || len(rows) != 1 {
			t.Fatalf("product search %q want 1 got total=%d len=%d", search, total, len(rows))
		}
	}
}

func TestPostgresCartMergeAndLock(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	category := &models.Category{Name: "水果", CategoryType: models.CategoryTypeLevel1}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{CategoryID: category.ID, Name: "apple", ShopPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(5))}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	cartRepo := NewCartRepository(db)
	for i := 0; i < 3; i++ {
		if err := cartRepo.AddNums(7, product.ID, 2); err != nil {
			t.Fatalf("add cart failed: %v", err)
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		items, err := cartRepo.WithTx(tx).ListByUserForUpdate(7)
		if err != nil {
			return err
		}
		if len(items) != 1 || items[0].Nums != 6 {
			t.Fatalf("expected merged nums=6, got %+v", items)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("locked read failed: %v", err)
	}
}
