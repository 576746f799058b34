package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Exists(id uint) (bool, error)
	Create(product *models.Product) error
	IncrementClickNum(id uint) error
	AdjustFavNum(id uint, delta int) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func preloadProductDetail(query *gorm.DB) *gorm.DB {
	return query.Preload("Category").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if filter.PriceMin != nil {
		query = query.Where("shop_price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("shop_price <= ?", *filter.PriceMax)
	}
	if filter.IsHot != nil {
		query = query.Where("is_hot = ?", *filter.IsHot)
	}
	if filter.IsNew != nil {
		query = query.Where("is_new = ?", *filter.IsNew)
	}
	if filter.CategoryIDs != nil {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	query = applyProductSearch(query, filter.Search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(preloadProductDetail(query), filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order(productOrderClause(filter.Ordering)).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// applyProductSearch 多个关键词之间为 AND，每个关键词匹配商品名全称或简介片段。
func applyProductSearch(query *gorm.DB, search string) *gorm.DB {
	terms := strings.Fields(search)
	if len(terms) == 0 {
		return query
	}
	condition := fmt.Sprintf(`(LOWER(name) = LOWER(?) OR goods_brief %s ? ESCAPE '\')`, likeOperator(query))
	for _, term := range terms {
		query = query.Where(condition, term, "%"+escapeLike(term)+"%")
	}
	return query
}

func productOrderClause(ordering string) string {
	switch ordering {
	case ProductOrderSoldNumAsc:
		return "sold_num ASC, id ASC"
	case ProductOrderSoldNumDesc:
		return "sold_num DESC, id DESC"
	case ProductOrderAddTimeAsc:
		return "add_time ASC, id ASC"
	case ProductOrderAddTimeDesc:
		return "add_time DESC, id DESC"
	default:
		return "id ASC"
	}
}

// GetByID 根据 ID 获取商品（含分类与图片）
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := preloadProductDetail(r.db).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Exists 判断商品是否存在
func (r *GormProductRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建商品，Images 随商品一并写入
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Omit("Category").Create(product).Error
}

// IncrementClickNum 点击数 +1
func (r *GormProductRepository) IncrementClickNum(id uint) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumn("click_num", gorm.Expr("click_num + ?", 1)).Error
}

// AdjustFavNum 调整收藏数，不会小于 0
func (r *GormProductRepository) AdjustFavNum(id uint, delta int) error {
	if delta == 0 {
		return nil
	}
	return r.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumn("fav_num", gorm.Expr("CASE WHEN fav_num + ? < 0 THEN 0 ELSE fav_num + ? END", delta, delta)).Error
}
