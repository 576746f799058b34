package service

import (
	"errors"
	"testing"

	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
)

func TestFavoriteLifecycleAdjustsFavNum(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewProductRepository(db))
	category := createServiceTestCategory(t, db, "生鲜", models.CategoryTypeLevel1, nil)
	product := createServiceTestProduct(t, db, category.ID, "红富士", "12.00")

	favNum := func() int {
		var p models.Product
		if err := db.First(&p, product.ID).Error; err != nil {
			t.Fatalf("load product failed: %v", err)
		}
		return p.FavNum
	}

	if _, err := svc.Add(1, product.ID); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}
	if favNum() != 1 {
		t.Fatalf("fav_num should be 1, got %d", favNum())
	}
	if _, err := svc.Add(1, product.ID); !errors.Is(err, ErrAlreadyFavorited) {
		t.Fatalf("expected ErrAlreadyFavorited, got %v", err)
	}
	if favNum() != 1 {
		t.Fatalf("duplicate must not change fav_num, got %d", favNum())
	}
	if _, err := svc.Add(1, 9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	if _, err := svc.Get(1, product.ID); err != nil {
		t.Fatalf("get favorite failed: %v", err)
	}
	if _, err := svc.Get(2, product.ID); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("other user favorite should be not found, got %v", err)
	}
	favs, err := svc.List(1)
	if err != nil || len(favs) != 1 || favs[0].Product == nil {
		t.Fatalf("unexpected favorites: %+v err=%v", favs, err)
	}

	if err := svc.Remove(2, product.ID); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("other user must not remove, got %v", err)
	}
	if err := svc.Remove(1, product.ID); err != nil {
		t.Fatalf("remove favorite failed: %v", err)
	}
	if favNum() != 0 {
		t.Fatalf("fav_num should be back to 0, got %d", favNum())
	}
}
