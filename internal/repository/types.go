package repository

import "github.com/shopspring/decimal"

// 商品列表排序字段
const (
	ProductOrderSoldNumAsc  = "sold_num"
	ProductOrderSoldNumDesc = "-sold_num"
	ProductOrderAddTimeAsc  = "add_time"
	ProductOrderAddTimeDesc = "-add_time"
)

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page        int
	PageSize    int
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	IsHot       *bool
	IsNew       *bool
	CategoryIDs []uint // 已展开的分类及其子孙分类
	Search      string
	Ordering    string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
}
