package repository

import (
	"testing"

	"github.com/mxshop-next/internal/models"
)

func TestCartAddNumsMerges(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	category := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)
	product := createTestProduct(t, db, category.ID, "apple", "", 10)

	if err := repo.AddNums(1, product.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.AddNums(1, product.ID, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single merged row, got %d", len(items))
	}
	if items[0].Nums != 5 {
		t.Fatalf("expected nums=5, got %d", items[0].Nums)
	}
	if items[0].Product == nil || items[0].Product.ID != product.ID {
		t.Fatalf("expected product preloaded")
	}
}

func TestCartOwnerScoping(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	category := createTestCategory(t, db, "fruit", models.CategoryTypeLevel1, nil)
	product := createTestProduct(t, db, category.ID, "apple", "", 10)

	if err := repo.AddNums(1, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	item, err := repo.GetByUserAndProduct(2, product.ID)
	if err != nil || item != nil {
		t.Fatalf("other user must not see the item, got %+v err=%v", item, err)
	}
	updated, err := repo.SetNums(2, product.ID, 9)
	if err != nil || updated {
		t.Fatalf("other user must not update the item, updated=%v err=%v", updated, err)
	}
	deleted, err := repo.DeleteByUserAndProduct(2, product.ID)
	if err != nil || deleted {
		t.Fatalf("other user must not delete the item, deleted=%v err=%v", deleted, err)
	}

	updated, err = repo.SetNums(1, product.ID, 7)
	if err != nil || !updated {
		t.Fatalf("owner update failed, updated=%v err=%v", updated, err)
	}
	item, err = repo.GetByUserAndProduct(1, product.ID)
	if err != nil || item == nil || item.Nums != 7 {
		t.Fatalf("expected nums=7, got %+v err=%v", item, err)
	}
}
