package models

import "time"

// OrderItem 订单商品
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                // 主键
	OrderID   uint      `gorm:"index;not null" json:"-"`             // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`    // 商品ID
	GoodsNum  int       `gorm:"not null;default:0" json:"goods_num"` // 商品数量
	AddTime   time.Time `gorm:"autoCreateTime" json:"add_time"`      // 添加时间

	Product *Product `gorm:"foreignKey:ProductID" json:"goods,omitempty"` // 商品详情
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
