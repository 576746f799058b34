package repository

import (
	"errors"

	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
)

// VerifyCodeRepository 短信验证码数据访问接口
type VerifyCodeRepository interface {
	Create(code *models.VerifyCode) error
	GetLatest(mobile string) (*models.VerifyCode, error)
	DeleteByMobile(mobile string) error
	WithTx(tx *gorm.DB) VerifyCodeRepository
}

// GormVerifyCodeRepository GORM 实现
type GormVerifyCodeRepository struct {
	db *gorm.DB
}

// NewVerifyCodeRepository 创建验证码仓库
func NewVerifyCodeRepository(db *gorm.DB) *GormVerifyCodeRepository {
	return &GormVerifyCodeRepository{db: db}
}

// WithTx 绑定事务
func (r *GormVerifyCodeRepository) WithTx(tx *gorm.DB) VerifyCodeRepository {
	if tx == nil {
		return r
	}
	return &GormVerifyCodeRepository{db: tx}
}

// Create 创建验证码记录
func (r *GormVerifyCodeRepository) Create(code *models.VerifyCode) error {
	return r.db.Create(code).Error
}

// GetLatest 获取手机号最近一次发送的验证码
func (r *GormVerifyCodeRepository) GetLatest(mobile string) (*models.VerifyCode, error) {
	var code models.VerifyCode
	if err := r.db.Where("mobile = ?", mobile).
		Order("add_time DESC, id DESC").
		First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

// DeleteByMobile 删除手机号下全部验证码
func (r *GormVerifyCodeRepository) DeleteByMobile(mobile string) error {
	return r.db.Where("mobile = ?", mobile).Delete(&models.VerifyCode{}).Error
}
