package models

import "time"

// VerifyCode 短信验证码记录
type VerifyCode struct {
	ID      uint      `gorm:"primarykey" json:"id"`
	Mobile  string    `gorm:"type:varchar(11);not null;index" json:"mobile"`
	Code    string    `gorm:"type:varchar(10);not null" json:"-"`
	AddTime time.Time `gorm:"not null;index" json:"add_time"`
}

// TableName 指定表名
func (VerifyCode) TableName() string {
	return "verify_codes"
}
