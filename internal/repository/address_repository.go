package repository

import (
	"errors"

	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
)

// AddressRepository 收货地址数据访问接口
type AddressRepository interface {
	ListByUser(userID uint) ([]models.UserAddress, error)
	GetByIDAndUser(id, userID uint) (*models.UserAddress, error)
	Create(address *models.UserAddress) error
	Update(address *models.UserAddress) error
	DeleteByIDAndUser(id, userID uint) (bool, error)
}

// GormAddressRepository GORM 实现
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository 创建收货地址仓库
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// ListByUser 获取用户收货地址
func (r *GormAddressRepository) ListByUser(userID uint) ([]models.UserAddress, error) {
	var addresses []models.UserAddress
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByIDAndUser 获取用户自己的收货地址
func (r *GormAddressRepository) GetByIDAndUser(id, userID uint) (*models.UserAddress, error) {
	var address models.UserAddress
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// Create 创建收货地址
func (r *GormAddressRepository) Create(address *models.UserAddress) error {
	return r.db.Create(address).Error
}

// Update 更新可编辑字段，owner 条件防止越权写入
func (r *GormAddressRepository) Update(address *models.UserAddress) error {
	return r.db.Model(&models.UserAddress{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]interface{}{
			"province":      address.Province,
			"city":          address.City,
			"district":      address.District,
			"address":       address.Address,
			"signer_name":   address.SignerName,
			"signer_mobile": address.SignerMobile,
		}).Error
}

// DeleteByIDAndUser 删除用户自己的收货地址
func (r *GormAddressRepository) DeleteByIDAndUser(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserAddress{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
