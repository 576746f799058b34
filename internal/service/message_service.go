package service

import (
	"strings"

	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
)

// MessageService 用户留言
type MessageService struct {
	repo repository.MessageRepository
}

// NewMessageService 创建留言服务
func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// MessageInput 留言参数
type MessageInput struct {
	MessageType int
	Subject     string
	Message     string
	File        string
}

// List 用户留言列表
func (s *MessageService) List(userID uint) ([]models.UserMessage, error) {
	return s.repo.ListByUser(userID)
}

// Create 新建留言
func (s *MessageService) Create(userID uint, input MessageInput) (*models.UserMessage, error) {
	if input.MessageType == 0 {
		input.MessageType = models.MessageTypeLeave
	}
	if !models.ValidMessageType(input.MessageType) {
		return nil, fieldError("message_type", ErrMessageTypeInvalid)
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return nil, fieldError("subject", ErrMessageSubjectRequired)
	}
	body := strings.TrimSpace(input.Message)
	if body == "" {
		return nil, fieldError("message", ErrMessageBodyRequired)
	}
	message := &models.UserMessage{
		UserID:      userID,
		MessageType: input.MessageType,
		Subject:     subject,
		Message:     body,
		File:        strings.TrimSpace(input.File),
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Delete 删除自己的留言
func (s *MessageService) Delete(userID, id uint) error {
	deleted, err := s.repo.DeleteByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}
