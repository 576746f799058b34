package models

import "time"

// 留言类型
const (
	MessageTypeLeave     = 1 // 留言
	MessageTypeComplaint = 2 // 投诉
	MessageTypeInquiry   = 3 // 询问
	MessageTypeAfterSale = 4 // 售后
	MessageTypeWanted    = 5 // 求购
)

// UserMessage 用户留言
type UserMessage struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	MessageType int       `gorm:"not null;default:1" json:"message_type"`
	Subject     string    `gorm:"type:varchar(100);not null;default:''" json:"subject"`
	Message     string    `gorm:"type:text" json:"message"`
	File        string    `gorm:"type:varchar(500);not null;default:''" json:"file"`
	AddTime     time.Time `gorm:"autoCreateTime" json:"add_time"`
}

// TableName 指定表名
func (UserMessage) TableName() string {
	return "user_messages"
}

// ValidMessageType 判断留言类型是否合法
func ValidMessageType(messageType int) bool {
	return messageType >= MessageTypeLeave && messageType <= MessageTypeWanted
}
