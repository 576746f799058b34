package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mxshop-next/internal/authz"
	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := openSeedDB(t)
	for round := 0; round < 2; round++ {
		codes, err := seedCategories(db, categoryTree)
		if err != nil {
			t.Fatalf("seed categories round %d failed: %v", round, err)
		}
		created, err := seedProducts(db, codes, demoProducts)
		if err != nil {
			t.Fatalf("seed products round %d failed: %v", round, err)
		}
		if round == 0 && created != len(demoProducts) {
			t.Fatalf("first round should create %d products, got %d", len(demoProducts), created)
		}
		if round == 1 && created != 0 {
			t.Fatalf("second round should create nothing, got %d", created)
		}
	}

	var leaf models.Category
	if err := db.Where("code = ?", "nr").First(&leaf).Error; err != nil {
		t.Fatalf("load leaf failed: %v", err)
	}
	if leaf.CategoryType != models.CategoryTypeLevel3 || leaf.ParentID == nil {
		t.Fatalf("leaf should be level 3 with parent: %+v", leaf)
	}
	var images int64
	db.Model(&models.ProductImage{}).Count(&images)
	if images == 0 {
		t.Fatalf("expected product images to be seeded")
	}
}

func TestSeedCategoriesRejectsDeepTree(t *testing.T) {
	db := openSeedDB(t)
	deep := []categorySeed{{Name: "a", Code: "a", Children: []categorySeed{
		{Name: "b", Code: "b", Children: []categorySeed{
			{Name: "c", Code: "c", Children: []categorySeed{{Name: "d", Code: "d"}}},
		}},
	}}}
	if _, err := seedCategories(db, deep); err == nil {
		t.Fatalf("expected depth error")
	}
}

func TestGrantCatalogAdmin(t *testing.T) {
	db := openSeedDB(t)
	if err := grantCatalogAdmin(db, "nobody"); err == nil {
		t.Fatalf("unknown user should fail")
	}
	mobile := "13800138000"
	user := models.User{Username: mobile, Mobile: &mobile, PasswordHash: "x", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := grantCatalogAdmin(db, user.Username); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	svc, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	roles, err := svc.GetUserRoles(user.ID)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	found := false
	for _, role := range roles {
		if role == constants.RoleCatalogAdmin {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected catalog_admin role, got %v", roles)
	}
}
