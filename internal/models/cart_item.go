package models

import "time"

// CartItem 购物车项（同一用户同一商品仅一行）
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // 主键
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"-"`          // 用户ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"` // 商品ID
	Nums      int       `gorm:"not null;default:0" json:"nums"`                               // 购买数量
	AddTime   time.Time `gorm:"autoCreateTime;index" json:"add_time"`                         // 添加时间
	UpdatedAt time.Time `json:"-"`                                                            // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"goods,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
