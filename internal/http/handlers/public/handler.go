package public

import "github.com/mxshop-next/internal/provider"

// Handler 前台接口处理器入口
// 说明：商品目录、账号、购物车、订单及用户操作类接口均挂在此处理器上。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
