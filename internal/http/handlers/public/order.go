package public

import (
	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 下单请求；订单号、支付字段由服务端生成
type PlaceOrderRequest struct {
	PostScript   string `json:"post_script"`
	Address      string `json:"address"`
	SignerName   string `json:"signer_name"`
	SignerMobile string `json:"signer_mobile"`
}

// ListOrders 当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.PageQuery(c, h.Config.Catalog.DefaultPageSize, h.Config.Catalog.MaxPageSize)
	orders, total, err := h.OrderService.List(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// PlaceOrder 将购物车结算为订单
func (h *Handler) PlaceOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if err := handlershared.BindOwned(c, &req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.PlaceOrder(c.Request.Context(), uid, service.PlaceOrderInput{
		PostScript:   req.PostScript,
		Address:      req.Address,
		SignerName:   req.SignerName,
		SignerMobile: req.SignerMobile,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_create_failed")
		return
	}
	response.Success(c, order)
}

// GetOrder 订单详情（含商品）
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(uid, orderID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除订单及其商品
func (h *Handler) DeleteOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(uid, orderID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_delete_failed")
		return
	}
	if !handlershared.EnsureOwner(c, order.UserID, uid) {
		return
	}
	if err := h.OrderService.Delete(uid, orderID); err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
