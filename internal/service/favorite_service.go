package service

import (
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"

	"gorm.io/gorm"
)

// FavoriteService 用户收藏
type FavoriteService struct {
	favRepo     repository.FavoriteRepository
	productRepo repository.ProductRepository
}

// NewFavoriteService 创建收藏服务
func NewFavoriteService(favRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favRepo: favRepo, productRepo: productRepo}
}

// List 用户收藏列表
func (s *FavoriteService) List(userID uint) ([]models.UserFav, error) {
	return s.favRepo.ListByUser(userID)
}

// Get 查询是否收藏了某商品
func (s *FavoriteService) Get(userID, productID uint) (*models.UserFav, error) {
	fav, err := s.favRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if fav == nil {
		return nil, ErrFavoriteNotFound
	}
	return fav, nil
}

// Add 收藏商品并累加商品收藏数
func (s *FavoriteService) Add(userID, productID uint) (*models.UserFav, error) {
	exists, err := s.productRepo.Exists(productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fieldError("goods", ErrProductNotFound)
	}

	fav := &models.UserFav{UserID: userID, ProductID: productID}
	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		favRepo := s.favRepo.WithTx(tx)
		existing, err := favRepo.GetByUserAndProduct(userID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyFavorited
		}
		if err := favRepo.Create(fav); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyFavorited
			}
			return err
		}
		return s.productRepo.WithTx(tx).AdjustFavNum(productID, 1)
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

// Remove 取消收藏并扣减商品收藏数
func (s *FavoriteService) Remove(userID, productID uint) error {
	return s.productRepo.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.favRepo.WithTx(tx).DeleteByUserAndProduct(userID, productID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrFavoriteNotFound
		}
		return s.productRepo.WithTx(tx).AdjustFavNum(productID, -1)
	})
}
