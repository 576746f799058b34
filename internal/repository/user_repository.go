package repository

import (
	"errors"
	"strings"

	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIdentifier(identifier string) (*models.User, error)
	MobileRegistered(mobile string) (bool, error)
	MobileTakenByOther(mobile string, userID uint) (bool, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) UserRepository
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// WithTx 绑定事务
func (r *GormUserRepository) WithTx(tx *gorm.DB) UserRepository {
	if tx == nil {
		return r
	}
	return &GormUserRepository{db: tx}
}

func (r *GormUserRepository) first(query *gorm.DB) (*models.User, error) {
	var user models.User
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Transaction 开启事务
func (r *GormUserRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// GetByID 根据 ID 获取用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	return r.first(r.db.Where("id = ?", id))
}

// GetByUsername 根据用户名获取用户
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.first(r.db.Where("username = ?", strings.TrimSpace(username)))
}

// GetByIdentifier 按用户名或手机号查找用户（登录用）
func (r *GormUserRepository) GetByIdentifier(identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}
	return r.first(r.db.Where("username = ? OR mobile = ?", identifier, identifier).Order("id ASC"))
}

// MobileRegistered 手机号是否已被注册（手机号或以手机号为用户名）
func (r *GormUserRepository) MobileRegistered(mobile string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("mobile = ? OR username = ?", mobile, mobile).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MobileTakenByOther 手机号是否被其他用户占用
func (r *GormUserRepository) MobileTakenByOther(mobile string, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("mobile = ? AND id <> ?", mobile, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 保存用户
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete 删除用户
func (r *GormUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
