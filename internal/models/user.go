package models

import "time"

// 性别
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User 用户表（用户名即注册手机号）
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                    // 主键
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`  // 用户名
	Mobile       *string   `gorm:"type:varchar(11);uniqueIndex" json:"mobile"`              // 手机号
	PasswordHash string    `gorm:"not null" json:"-"`                                       // 密码哈希（不返回给前端）
	Name         string    `gorm:"type:varchar(30);not null;default:''" json:"name"`        // 姓名
	Birthday     string    `gorm:"type:varchar(10);not null;default:''" json:"birthday"`    // 出生年月 YYYY-MM-DD
	Gender       string    `gorm:"type:varchar(6);not null;default:'female'" json:"gender"` // 性别
	Email        string    `gorm:"type:varchar(100);not null;default:''" json:"email"`      // 邮箱
	IsActive     bool      `gorm:"not null;default:true" json:"-"`                          // 是否可登录
	AddTime      time.Time `gorm:"autoCreateTime;index" json:"add_time"`                    // 注册时间
	UpdatedAt    time.Time `json:"-"`                                                       // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// MobileValue 返回手机号，未设置时为空串
func (u *User) MobileValue() string {
	if u == nil || u.Mobile == nil {
		return ""
	}
	return *u.Mobile
}
