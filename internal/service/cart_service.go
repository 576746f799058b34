package service

import (
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
)

// CartService 购物车
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Add 加入购物车，已存在时累加数量
func (s *CartService) Add(userID, productID uint, nums int) (*models.CartItem, error) {
	if nums < 1 {
		return nil, fieldError("nums", ErrCartNumsInvalid)
	}
	exists, err := s.productRepo.Exists(productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fieldError("goods", ErrProductNotFound)
	}
	if err := s.cartRepo.AddNums(userID, productID, nums); err != nil {
		return nil, err
	}
	return s.Get(userID, productID)
}

// SetQuantity 覆盖购物车中商品数量
func (s *CartService) SetQuantity(userID, productID uint, nums int) (*models.CartItem, error) {
	if nums < 1 {
		return nil, fieldError("nums", ErrCartNumsInvalid)
	}
	updated, err := s.cartRepo.SetNums(userID, productID, nums)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrCartItemNotFound
	}
	return s.Get(userID, productID)
}

// List 当前用户购物车
func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// Get 购物车中的单个商品
func (s *CartService) Get(userID, productID uint) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

// Remove 从购物车移除商品
func (s *CartService) Remove(userID, productID uint) error {
	deleted, err := s.cartRepo.DeleteByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCartItemNotFound
	}
	return nil
}
