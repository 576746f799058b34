package repository

import (
	"errors"
	"time"

	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口，所有操作都按用户隔离
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	ListByUserForUpdate(userID uint) ([]models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	AddNums(userID, productID uint, nums int) error
	SetNums(userID, productID uint, nums int) (bool, error)
	DeleteByUserAndProduct(userID, productID uint) (bool, error)
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车项（含商品详情）
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Preload("Product.Category").Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("add_time ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByUserForUpdate 加锁读取用户购物车（下单时使用，sqlite 下锁子句被忽略）
func (r *GormCartRepository) ListByUserForUpdate(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndProduct 获取单个购物车项
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").Preload("Product.Category").Preload("Product.Images").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// AddNums 不存在则插入，存在则在原数量上累加；依赖 (user_id, product_id) 唯一索引保证原子性
func (r *GormCartRepository) AddNums(userID, productID uint, nums int) error {
	now := time.Now()
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Nums:      nums,
		AddTime:   now,
		UpdatedAt: now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"nums":       gorm.Expr("cart_items.nums + ?", nums),
			"updated_at": now,
		}),
	}).Create(&item).Error
}

// SetNums 覆盖购物车数量，返回记录是否存在
func (r *GormCartRepository) SetNums(userID, productID uint, nums int) (bool, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{"nums": nums, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteByUserAndProduct 删除购物车项，返回是否删除了记录
func (r *GormCartRepository) DeleteByUserAndProduct(userID, productID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ClearByUser 清空购物车
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
