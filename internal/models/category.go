package models

import "time"

// 分类层级
const (
	CategoryTypeLevel1 = 1 // 一级类目
	CategoryTypeLevel2 = 2 // 二级类目
	CategoryTypeLevel3 = 3 // 三级类目

	// MaxCategoryDepth 分类树最大深度
	MaxCategoryDepth = 3
)

// Category 商品分类表（自引用树）
type Category struct {
	ID           uint      `gorm:"primarykey" json:"id"`                             // 主键
	Name         string    `gorm:"type:varchar(30);not null;default:''" json:"name"` // 类别名
	Code         string    `gorm:"type:varchar(30);not null;default:''" json:"code"` // 类别编码
	Desc         string    `gorm:"column:description;type:text" json:"desc"`         // 类别描述
	CategoryType int       `gorm:"not null;default:1;index" json:"category_type"`    // 类目级别
	ParentID     *uint     `gorm:"index" json:"parent_category"`                     // 父类目
	IsTab        bool      `gorm:"not null;default:false" json:"is_tab"`             // 是否导航
	AddTime      time.Time `gorm:"autoCreateTime;index" json:"add_time"`             // 添加时间

	SubCategories []Category `gorm:"foreignKey:ParentID" json:"sub_cat,omitempty"` // 子类目
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
