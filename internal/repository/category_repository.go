package repository

import (
	"errors"

	"github.com/mxshop-next/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	ListTree() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetParentID(id uint) (*uint, bool, error)
	DescendantIDs(id uint) ([]uint, error)
	Create(category *models.Category) error
	WithTx(tx *gorm.DB) CategoryRepository
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCategoryRepository) WithTx(tx *gorm.DB) CategoryRepository {
	if tx == nil {
		return r
	}
	return &GormCategoryRepository{db: tx}
}

func preloadSubCategories(query *gorm.DB) *gorm.DB {
	return query.
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("SubCategories.SubCategories", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

// ListTree 获取一级分类及其两级子分类
func (r *GormCategoryRepository) ListTree() ([]models.Category, error) {
	var categories []models.Category
	if err := preloadSubCategories(r.db).
		Where("category_type = ?", models.CategoryTypeLevel1).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID 获取分类详情（含子分类）
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := preloadSubCategories(r.db).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetParentID 返回分类的父分类 ID；第二个返回值表示分类是否存在
func (r *GormCategoryRepository) GetParentID(id uint) (*uint, bool, error) {
	var row struct {
		ParentID *uint
	}
	result := r.db.Model(&models.Category{}).Select("parent_id").Where("id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return row.ParentID, true, nil
}

// DescendantIDs 返回分类本身及全部子孙分类 ID（最多 MaxCategoryDepth 层）
func (r *GormCategoryRepository) DescendantIDs(id uint) ([]uint, error) {
	ids := []uint{id}
	seen := map[uint]struct{}{id: {}}
	frontier := []uint{id}
	for depth := 1; depth < models.MaxCategoryDepth && len(frontier) > 0; depth++ {
		var children []uint
		if err := r.db.Model(&models.Category{}).Where("parent_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, child := range children {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			ids = append(ids, child)
			frontier = append(frontier, child)
		}
	}
	return ids, nil
}

// Create 创建分类
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}
