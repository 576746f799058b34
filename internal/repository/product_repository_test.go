package repository

import (
	"testing"

	"github.com/mxshop-next/internal/models"

	"github.com/shopspring/decimal"
)

func productIDs(products []models.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestProductListPriceRangeInclusive(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)
	cheap := createTestProduct(t, db, category.ID, "apple", "red apple", 10)
	mid := createTestProduct(t, db, category.ID, "pear", "sweet pear", 20)
	createTestProduct(t, db, category.ID, "durian", "king of fruit", 30)

	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(20)
	products, total, err := repo.List(ProductListFilter{PriceMin: &min, PriceMax: &max, Ordering: ProductOrderAddTimeAsc})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("expected 2 products in range, got total=%d len=%d", total, len(products))
	}
	ids := productIDs(products)
	if ids[0] != cheap.ID || ids[1] != mid.ID {
		t.Fatalf("unexpected products: %v", ids)
	}
}

func TestProductListSearchExactNameOrBrief(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)
	exact := createTestProduct(t, db, category.ID, "Mango", "tropical", 10)
	brief := createTestProduct(t, db, category.ID, "Papaya", "tastes like mango pudding", 10)
	createTestProduct(t, db, category.ID, "Mangosteen", "purple shell", 10)

	products, total, err := repo.List(ProductListFilter{Search: "mango"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", total, productIDs(products))
	}
	ids := productIDs(products)
	if ids[0] != exact.ID || ids[1] != brief.ID {
		t.Fatalf("unexpected search result: %v", ids)
	}
}

func TestProductListSearchEscapesWildcards(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)
	createTestProduct(t, db, category.ID, "apple", "plain", 10)

	_, total, err := repo.List(ProductListFilter{Search: "%"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("wildcard should be matched literally, got %d", total)
	}
}

func TestProductListOrderingAndPagination(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)
	var created []*models.Product
	for i, sold := range []int{5, 50, 20} {
		p := createTestProduct(t, db, category.ID, string(rune('a'+i)), "", 10)
		if err := db.Model(p).Update("sold_num", sold).Error; err != nil {
			t.Fatalf("update sold_num failed: %v", err)
		}
		created = append(created, p)
	}

	products, total, err := repo.List(ProductListFilter{Ordering: ProductOrderSoldNumDesc, Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 3 || len(products) != 2 {
		t.Fatalf("expected total=3 len=2, got total=%d len=%d", total, len(products))
	}
	if products[0].ID != created[1].ID || products[1].ID != created[2].ID {
		t.Fatalf("unexpected order: %v", productIDs(products))
	}

	products, _, err = repo.List(ProductListFilter{Ordering: ProductOrderSoldNumDesc, Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != created[0].ID {
		t.Fatalf("unexpected page 2: %v", productIDs(products))
	}
}

func TestProductListCategoryAndFlags(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	fruit := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)
	meat := createTestCategory(t, db, "meat", models.CategoryTypeLevel1, nil)
	hot := createTestProduct(t, db, fruit.ID, "apple", "", 10)
	createTestProduct(t, db, fruit.ID, "pear", "", 10)
	createTestProduct(t, db, meat.ID, "beef", "", 10)
	if err := db.Model(hot).Update("is_hot", true).Error; err != nil {
		t.Fatalf("update is_hot failed: %v", err)
	}

	isHot := true
	products, total, err := repo.List(ProductListFilter{CategoryIDs: []uint{fruit.ID}, IsHot: &isHot})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 1 || products[0].ID != hot.ID {
		t.Fatalf("unexpected filtered result: %v", productIDs(products))
	}
	if products[0].Category == nil || products[0].Category.ID != fruit.ID {
		t.Fatalf("expected category preloaded, got %+v", products[0].Category)
	}
}

func TestProductCreateWithImagesAndCounters(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)

	product := &models.Product{
		CategoryID: category.ID,
		Name:       "cherry",
		ShopPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(8)),
		Images:     []models.ProductImage{{Image: "goods/images/1.jpg"}, {Image: "goods/images/2.jpg"}},
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := repo.IncrementClickNum(product.ID); err != nil {
		t.Fatalf("increment click failed: %v", err)
	}
	if err := repo.AdjustFavNum(product.ID, -1); err != nil {
		t.Fatalf("adjust fav failed: %v", err)
	}

	loaded, err := repo.GetByID(product.ID)
	if err != nil || loaded == nil {
		t.Fatalf("get product failed: %v", err)
	}
	if len(loaded.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(loaded.Images))
	}
	if loaded.ClickNum != 1 {
		t.Fatalf("expected click_num=1, got %d", loaded.ClickNum)
	}
	if loaded.FavNum != 0 {
		t.Fatalf("fav_num must not go negative, got %d", loaded.FavNum)
	}

	missing, err := repo.GetByID(product.ID + 100)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing product, got %+v err=%v", missing, err)
	}
}
