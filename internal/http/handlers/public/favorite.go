package public

import (
	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// FavoriteRequest 收藏请求，goods 为商品 ID
type FavoriteRequest struct {
	Goods uint `json:"goods" binding:"required"`
}

// ListFavorites 当前用户收藏
func (h *Handler) ListFavorites(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	favs, err := h.FavoriteService.List(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.favorite_failed", err)
		return
	}
	response.Success(c, favs)
}

// AddFavorite 收藏商品
func (h *Handler) AddFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req FavoriteRequest
	if err := handlershared.BindOwned(c, &req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	fav, err := h.FavoriteService.Add(uid, req.Goods)
	if err != nil {
		respondWithMappedError(c, err, favoriteErrorRules, response.CodeInternal, "error.favorite_failed")
		return
	}
	response.Success(c, fav)
}

// GetFavorite 查询是否已收藏某商品
func (h *Handler) GetFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseIDParam(c, "product_id")
	if !ok {
		return
	}
	fav, err := h.FavoriteService.Get(uid, productID)
	if err != nil {
		respondWithMappedError(c, err, favoriteErrorRules, response.CodeInternal, "error.favorite_failed")
		return
	}
	response.Success(c, fav)
}

// DeleteFavorite 取消收藏
func (h *Handler) DeleteFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseIDParam(c, "product_id")
	if !ok {
		return
	}
	if err := h.FavoriteService.Remove(uid, productID); err != nil {
		respondWithMappedError(c, err, favoriteErrorRules, response.CodeInternal, "error.favorite_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
