package models

import "time"

// UserAddress 收货地址
type UserAddress struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                      // 主键
	UserID       uint      `gorm:"not null;index" json:"-"`                                   // 用户ID
	Province     string    `gorm:"type:varchar(100);not null;default:''" json:"province"`     // 省份
	City         string    `gorm:"type:varchar(100);not null;default:''" json:"city"`         // 城市
	District     string    `gorm:"type:varchar(100);not null;default:''" json:"district"`     // 区域
	Address      string    `gorm:"type:varchar(100);not null;default:''" json:"address"`      // 详细地址
	SignerName   string    `gorm:"type:varchar(100);not null;default:''" json:"signer_name"`  // 签收人
	SignerMobile string    `gorm:"type:varchar(11);not null;default:''" json:"signer_mobile"` // 电话
	AddTime      time.Time `gorm:"autoCreateTime" json:"add_time"`                            // 添加时间
}

// TableName 指定表名
func (UserAddress) TableName() string {
	return "user_addresses"
}
