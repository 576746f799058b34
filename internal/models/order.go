package models

import "time"

// 支付状态
const (
	PayStatusPaying        = "paying"         // 待支付
	PayStatusTradeSuccess  = "TRADE_SUCCESS"  // 成功
	PayStatusTradeClosed   = "TRADE_CLOSED"   // 超时关闭
	PayStatusWaitBuyerPay  = "WAIT_BUYER_PAY" // 交易创建
	PayStatusTradeFinished = "TRADE_FINISHED" // 交易结束
)

// Order 订单表；支付相关字段由支付回调写入，本系统只保留结构
type Order struct {
	ID           uint       `gorm:"primarykey" json:"id"`                                                  // 主键
	UserID       uint       `gorm:"not null;index" json:"-"`                                               // 用户ID
	OrderSN      string     `gorm:"column:order_sn;type:varchar(30);uniqueIndex;not null" json:"order_sn"` // 订单号
	TradeNo      *string    `gorm:"type:varchar(100);uniqueIndex" json:"trade_no"`                         // 交易号
	PayStatus    string     `gorm:"type:varchar(30);not null;default:'paying';index" json:"pay_status"`    // 支付状态
	PayType      string     `gorm:"type:varchar(10);not null;default:''" json:"pay_type"`                  // 支付方式
	PostScript   string     `gorm:"type:varchar(200);not null;default:''" json:"post_script"`              // 订单留言
	OrderAmount  Money      `gorm:"type:decimal(20,2);not null;default:0" json:"order_amount"`             // 订单金额
	PayTime      *time.Time `json:"pay_time"`                                                              // 支付时间
	NonceStr     string     `gorm:"type:varchar(50);not null;default:''" json:"nonce_str"`                 // 随机串
	Address      string     `gorm:"type:varchar(100);not null;default:''" json:"address"`                  // 收货地址
	SignerName   string     `gorm:"type:varchar(20);not null;default:''" json:"signer_name"`               // 签收人
	SignerMobile string     `gorm:"type:varchar(11);not null;default:''" json:"signer_mobile"`             // 联系电话
	AddTime      time.Time  `gorm:"autoCreateTime;index" json:"add_time"`                                  // 下单时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"goods,omitempty"` // 订单商品
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
