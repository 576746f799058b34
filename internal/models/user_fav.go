package models

import "time"

// UserFav 用户收藏
type UserFav struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_fav_user_product" json:"-"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_fav_user_product" json:"product_id"`
	AddTime   time.Time `gorm:"autoCreateTime" json:"add_time"`

	Product *Product `gorm:"foreignKey:ProductID" json:"goods,omitempty"`
}

// TableName 指定表名
func (UserFav) TableName() string {
	return "user_favs"
}
