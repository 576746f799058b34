package repository

import (
	"errors"

	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository 用户收藏数据访问接口
type FavoriteRepository interface {
	ListByUser(userID uint) ([]models.UserFav, error)
	GetByUserAndProduct(userID, productID uint) (*models.UserFav, error)
	Create(fav *models.UserFav) error
	DeleteByUserAndProduct(userID, productID uint) (bool, error)
	WithTx(tx *gorm.DB) FavoriteRepository
}

// GormFavoriteRepository GORM 实现
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建收藏仓库
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// WithTx 绑定事务
func (r *GormFavoriteRepository) WithTx(tx *gorm.DB) FavoriteRepository {
	if tx == nil {
		return r
	}
	return &GormFavoriteRepository{db: tx}
}

// ListByUser 获取用户收藏（含商品详情）
func (r *GormFavoriteRepository) ListByUser(userID uint) ([]models.UserFav, error) {
	var favs []models.UserFav
	if err := r.db.Preload("Product").Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("add_time DESC, id DESC").
		Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}

// GetByUserAndProduct 获取单条收藏
func (r *GormFavoriteRepository) GetByUserAndProduct(userID, productID uint) (*models.UserFav, error) {
	var fav models.UserFav
	if err := r.db.Preload("Product").Preload("Product.Images").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fav, nil
}

// Create 创建收藏
func (r *GormFavoriteRepository) Create(fav *models.UserFav) error {
	return r.db.Omit("Product").Create(fav).Error
}

// DeleteByUserAndProduct 取消收藏，返回是否删除了记录
func (r *GormFavoriteRepository) DeleteByUserAndProduct(userID, productID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.UserFav{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
