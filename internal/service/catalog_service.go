package service

import (
	"strings"

	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService 商品与分类
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductQuery 商品列表查询参数（价格为原始字符串，由服务端解析）
type ProductQuery struct {
	Page       int
	PageSize   int
	PriceMin   string
	PriceMax   string
	IsHot      *bool
	IsNew      *bool
	CategoryID *uint
	Search     string
	Ordering   string
}

// CategoryInput 创建商品时的分类参数：带 ID 时关联已有分类，否则新建
type CategoryInput struct {
	ID       *uint
	Name     string
	Code     string
	Desc     string
	ParentID *uint
	IsTab    bool
}

// CreateProductInput 创建商品参数
type CreateProductInput struct {
	Category        CategoryInput
	GoodsSN         string
	Name            string
	GoodsNum        int
	MarketPrice     decimal.Decimal
	ShopPrice       decimal.Decimal
	GoodsBrief      string
	GoodsDesc       string
	ShipFree        *bool
	GoodsFrontImage string
	IsNew           bool
	IsHot           bool
	Images          []string
}

// ListProducts 商品列表
func (s *CatalogService) ListProducts(query ProductQuery) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		IsHot:    query.IsHot,
		IsNew:    query.IsNew,
		Search:   strings.TrimSpace(query.Search),
		Ordering: strings.TrimSpace(query.Ordering),
	}

	switch filter.Ordering {
	case "", repository.ProductOrderSoldNumAsc, repository.ProductOrderSoldNumDesc,
		repository.ProductOrderAddTimeAsc, repository.ProductOrderAddTimeDesc:
	default:
		return nil, 0, fieldError("ordering", ErrInvalidOrdering)
	}

	var err error
	if filter.PriceMin, err = parsePriceFilter(query.PriceMin); err != nil {
		return nil, 0, fieldError("pricemin", err)
	}
	if filter.PriceMax, err = parsePriceFilter(query.PriceMax); err != nil {
		return nil, 0, fieldError("pricemax", err)
	}

	if query.CategoryID != nil {
		ids, err := s.categoryRepo.DescendantIDs(*query.CategoryID)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryIDs = ids
	}

	return s.productRepo.List(filter)
}

func parsePriceFilter(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, ErrInvalidPriceFilter
	}
	return &value, nil
}

// GetProduct 商品详情，点击数累加失败不影响返回
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.productRepo.IncrementClickNum(id); err != nil {
		logger.Warnw("product_click_num_increment_failed", "product_id", id, "error", err)
	} else {
		product.ClickNum++
	}
	return product, nil
}

// CreateProduct 在一个事务内创建（或关联）分类、商品与轮播图
func (s *CatalogService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fieldError("name", ErrProductNameRequired)
	}
	if input.ShopPrice.IsNegative() {
		return nil, fieldError("shop_price", ErrProductPriceInvalid)
	}
	if input.MarketPrice.IsNegative() {
		return nil, fieldError("market_price", ErrProductPriceInvalid)
	}

	shipFree := true
	if input.ShipFree != nil {
		shipFree = *input.ShipFree
	}
	product := &models.Product{
		GoodsSN:         strings.TrimSpace(input.GoodsSN),
		Name:            name,
		GoodsNum:        input.GoodsNum,
		MarketPrice:     models.NewMoneyFromDecimal(input.MarketPrice),
		ShopPrice:       models.NewMoneyFromDecimal(input.ShopPrice),
		GoodsBrief:      strings.TrimSpace(input.GoodsBrief),
		GoodsDesc:       input.GoodsDesc,
		ShipFree:        shipFree,
		GoodsFrontImage: strings.TrimSpace(input.GoodsFrontImage),
		IsNew:           input.IsNew,
		IsHot:           input.IsHot,
	}
	for _, image := range input.Images {
		image = strings.TrimSpace(image)
		if image == "" {
			continue
		}
		product.Images = append(product.Images, models.ProductImage{Image: image})
	}

	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		category, err := s.resolveCategory(s.categoryRepo.WithTx(tx), input.Category)
		if err != nil {
			return err
		}
		product.CategoryID = category.ID
		if err := s.productRepo.WithTx(tx).Create(product); err != nil {
			return err
		}
		product.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	if product.Images == nil {
		product.Images = []models.ProductImage{}
	}
	logger.Infow("product_created", "product_id", product.ID, "category_id", product.CategoryID)
	return product, nil
}

func (s *CatalogService) resolveCategory(repo repository.CategoryRepository, input CategoryInput) (*models.Category, error) {
	if input.ID != nil {
		category, err := repo.GetByID(*input.ID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fieldError("category", ErrCategoryNotFound)
		}
		category.SubCategories = nil
		return category, nil
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fieldError("category", ErrCategoryNotFound)
	}
	depth := 1
	if input.ParentID != nil {
		parentDepth, err := categoryDepth(repo, *input.ParentID)
		if err != nil {
			return nil, err
		}
		depth = parentDepth + 1
		if depth > models.MaxCategoryDepth {
			return nil, fieldError("category", ErrCategoryCycle)
		}
	}

	category := &models.Category{
		Name:         name,
		Code:         strings.TrimSpace(input.Code),
		Desc:         input.Desc,
		CategoryType: depth,
		ParentID:     input.ParentID,
		IsTab:        input.IsTab,
	}
	if err := repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// categoryDepth 沿父链向上计算分类深度，链上出现重复节点或超出最大深度视为非法
func categoryDepth(repo repository.CategoryRepository, id uint) (int, error) {
	seen := map[uint]struct{}{}
	current := id
	depth := 0
	for {
		if _, ok := seen[current]; ok {
			return 0, fieldError("category", ErrCategoryCycle)
		}
		seen[current] = struct{}{}
		parentID, exists, err := repo.GetParentID(current)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, fieldError("category", ErrCategoryNotFound)
		}
		depth++
		if depth > models.MaxCategoryDepth {
			return 0, fieldError("category", ErrCategoryCycle)
		}
		if parentID == nil {
			return depth, nil
		}
		current = *parentID
	}
}

// ListCategories 一级分类树
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.ListTree()
}

// GetCategory 分类详情（含子分类）
func (s *CatalogService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
