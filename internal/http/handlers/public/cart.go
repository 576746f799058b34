package public

import (
	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartAddRequest 加入购物车请求，goods 为商品 ID
type CartAddRequest struct {
	Goods uint `json:"goods" binding:"required"`
	Nums  int  `json:"nums"`
}

// CartUpdateRequest 修改购物车数量请求
type CartUpdateRequest struct {
	Nums int `json:"nums"`
}

// ListCart 当前用户购物车
func (h *Handler) ListCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	items, err := h.CartService.List(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, items)
}

// AddCartItem 加入购物车，已存在时累加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartAddRequest
	if err := handlershared.BindOwned(c, &req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.CartService.Add(uid, req.Goods, req.Nums)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, item)
}

// GetCartItem 购物车中的单个商品
func (h *Handler) GetCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseIDParam(c, "product_id")
	if !ok {
		return
	}
	item, err := h.CartService.Get(uid, productID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, item)
}

// UpdateCartItem 覆盖购物车商品数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseIDParam(c, "product_id")
	if !ok {
		return
	}
	var req CartUpdateRequest
	if err := handlershared.BindOwned(c, &req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	current, err := h.CartService.Get(uid, productID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	if !handlershared.EnsureOwner(c, current.UserID, uid) {
		return
	}
	item, err := h.CartService.SetQuantity(uid, productID, req.Nums)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, item)
}

// DeleteCartItem 从购物车移除商品
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseIDParam(c, "product_id")
	if !ok {
		return
	}
	if err := h.CartService.Remove(uid, productID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
