package repository

import (
	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
)

// MessageRepository 用户留言数据访问接口
type MessageRepository interface {
	ListByUser(userID uint) ([]models.UserMessage, error)
	Create(message *models.UserMessage) error
	DeleteByIDAndUser(id, userID uint) (bool, error)
}

// GormMessageRepository GORM 实现
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建留言仓库
func NewMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// ListByUser 获取用户留言
func (r *GormMessageRepository) ListByUser(userID uint) ([]models.UserMessage, error) {
	var messages []models.UserMessage
	if err := r.db.Where("user_id = ?", userID).Order("add_time DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Create 创建留言
func (r *GormMessageRepository) Create(message *models.UserMessage) error {
	return r.db.Create(message).Error
}

// DeleteByIDAndUser 删除用户自己的留言
func (r *GormMessageRepository) DeleteByIDAndUser(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserMessage{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
