package models

import "time"

// Product 商品表
type Product struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                                 // 主键
	CategoryID      uint      `gorm:"not null;index" json:"category_id"`                                    // 分类ID
	GoodsSN         string    `gorm:"column:goods_sn;type:varchar(50);not null;default:''" json:"goods_sn"` // 商品唯一货号
	Name            string    `gorm:"type:varchar(100);not null;index" json:"name"`                         // 商品名
	ClickNum        int       `gorm:"not null;default:0" json:"click_num"`                                  // 点击数
	SoldNum         int       `gorm:"not null;default:0;index" json:"sold_num"`                             // 销售量
	FavNum          int       `gorm:"not null;default:0" json:"fav_num"`                                    // 收藏数
	GoodsNum        int       `gorm:"not null;default:0" json:"goods_num"`                                  // 库存数
	MarketPrice     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"market_price"`            // 市场价格
	ShopPrice       Money     `gorm:"type:decimal(20,2);not null;default:0;index" json:"shop_price"`        // 本店价格
	GoodsBrief      string    `gorm:"type:varchar(500);not null;default:''" json:"goods_brief"`             // 商品简短描述
	GoodsDesc       string    `gorm:"type:text" json:"goods_desc"`                                          // 商品详情（富文本）
	ShipFree        bool      `gorm:"not null;default:true" json:"ship_free"`                               // 是否承担运费
	GoodsFrontImage string    `gorm:"type:varchar(500);not null;default:''" json:"goods_front_image"`       // 封面图
	IsNew           bool      `gorm:"not null;default:false;index" json:"is_new"`                           // 是否新品
	IsHot           bool      `gorm:"not null;default:false;index" json:"is_hot"`                           // 是否热销
	AddTime         time.Time `gorm:"autoCreateTime;index" json:"add_time"`                                 // 添加时间

	Category *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Images   []ProductImage `gorm:"foreignKey:ProductID" json:"images"`              // 轮播图
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ProductImage 商品轮播图
type ProductImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"-"`
	Image     string    `gorm:"type:varchar(500);not null" json:"image"`
	AddTime   time.Time `gorm:"autoCreateTime" json:"add_time"`
}

// TableName 指定表名
func (ProductImage) TableName() string {
	return "product_images"
}
