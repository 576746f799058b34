package public

import (
	"strconv"
	"strings"

	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CategoryRequest 创建商品时的分类载荷：带 id 关联已有分类，否则按内容新建
type CategoryRequest struct {
	ID             *uint  `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	Desc           string `json:"desc"`
	ParentCategory *uint  `json:"parent_category"`
	IsTab          bool   `json:"is_tab"`
}

// ProductImageRequest 商品轮播图
type ProductImageRequest struct {
	Image string `json:"image"`
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Category        CategoryRequest       `json:"category"`
	GoodsSN         string                `json:"goods_sn"`
	Name            string                `json:"name"`
	GoodsNum        int                   `json:"goods_num"`
	MarketPrice     decimal.Decimal       `json:"market_price"`
	ShopPrice       decimal.Decimal       `json:"shop_price"`
	GoodsBrief      string                `json:"goods_brief"`
	GoodsDesc       string                `json:"goods_desc"`
	ShipFree        *bool                 `json:"ship_free"`
	GoodsFrontImage string                `json:"goods_front_image"`
	IsNew           bool                  `json:"is_new"`
	IsHot           bool                  `json:"is_hot"`
	Images          []ProductImageRequest `json:"images"`
}

// ListProducts 商品列表（过滤、搜索、排序、分页）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.PageQuery(c, h.Config.Catalog.DefaultPageSize, h.Config.Catalog.MaxPageSize)
	query := service.ProductQuery{
		Page:     page,
		PageSize: pageSize,
		PriceMin: c.Query("pricemin"),
		PriceMax: c.Query("pricemax"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}

	var ok bool
	if query.IsHot, ok = parseOptionalBool(c, "is_hot"); !ok {
		return
	}
	if query.IsNew, ok = parseOptionalBool(c, "is_new"); !ok {
		return
	}
	rawCategory := strings.TrimSpace(c.Query("category"))
	if rawCategory == "" {
		rawCategory = strings.TrimSpace(c.Query("top_category"))
	}
	if rawCategory != "" {
		categoryID, err := strconv.ParseUint(rawCategory, 10, 64)
		if err != nil || categoryID == 0 {
			respondError(c, response.CodeBadRequest, "error.id_invalid", nil)
			return
		}
		id := uint(categoryID)
		query.CategoryID = &id
	}

	products, total, err := h.CatalogService.ListProducts(query)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.CatalogService.GetProduct(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品（分类与轮播图嵌套写入）
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	images := make([]string, 0, len(req.Images))
	for _, image := range req.Images {
		images = append(images, image.Image)
	}
	product, err := h.CatalogService.CreateProduct(service.CreateProductInput{
		Category: service.CategoryInput{
			ID:       req.Category.ID,
			Name:     req.Category.Name,
			Code:     req.Category.Code,
			Desc:     req.Category.Desc,
			ParentID: req.Category.ParentCategory,
			IsTab:    req.Category.IsTab,
		},
		GoodsSN:         req.GoodsSN,
		Name:            req.Name,
		GoodsNum:        req.GoodsNum,
		MarketPrice:     req.MarketPrice,
		ShopPrice:       req.ShopPrice,
		GoodsBrief:      req.GoodsBrief,
		GoodsDesc:       req.GoodsDesc,
		ShipFree:        req.ShipFree,
		GoodsFrontImage: req.GoodsFrontImage,
		IsNew:           req.IsNew,
		IsHot:           req.IsHot,
		Images:          images,
	})
	if err != nil {
		respondWithMappedError(c, err, productCreateErrorRules, response.CodeInternal, "error.product_create_failed")
		return
	}
	response.Success(c, product)
}

// ListCategories 分类树
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CatalogService.GetCategory(id)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_fetch_failed")
		return
	}
	response.Success(c, category)
}

// parseOptionalBool 解析可选布尔查询参数，非法时已写出响应
func parseOptionalBool(c *gin.Context, name string) (*bool, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return nil, false
	}
	return &value, true
}
