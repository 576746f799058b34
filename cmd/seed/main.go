package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mxshop-next/internal/authz"
	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"gorm.io/gorm"
)

type categorySeed struct {
	Name     string
	Code     string
	Desc     string
	IsTab    bool
	Children []categorySeed
}

type productSeed struct {
	CategoryCode string
	GoodsSN      string
	Name         string
	MarketPrice  string
	ShopPrice    string
	GoodsNum     int
	Brief        string
	IsNew        bool
	IsHot        bool
	Images       []string
}

var categoryTree = []categorySeed{
	{Name: "生鲜食品", Code: "sxsp", Desc: "生鲜食品", IsTab: true, Children: []categorySeed{
		{Name: "精品肉类", Code: "jprl", Children: []categorySeed{
			{Name: "羊肉", Code: "yr"},
			{Name: "牛肉", Code: "nr"},
		}},
		{Name: "海鲜水产", Code: "hxsc", Children: []categorySeed{
			{Name: "虾类", Code: "xl"},
		}},
	}},
	{Name: "酒水饮料", Code: "jsyl", Desc: "酒水饮料", IsTab: true, Children: []categorySeed{
		{Name: "白酒", Code: "bj", Children: []categorySeed{
			{Name: "茅台", Code: "mt"},
		}},
		{Name: "饮料/水", Code: "yls", Children: []categorySeed{
			{Name: "果汁", Code: "gz"},
		}},
	}},
	{Name: "粮油副食", Code: "lyfs", Desc: "粮油副食", Children: []categorySeed{
		{Name: "食用油", Code: "syy", Children: []categorySeed{
			{Name: "橄榄油", Code: "gly"},
		}},
	}},
}

var demoProducts = []productSeed{
	{CategoryCode: "nr", GoodsSN: "MX-NR-0001", Name: "澳洲进口牛排 1kg", MarketPrice: "268.00", ShopPrice: "199.00", GoodsNum: 120, Brief: "草饲原切牛排", IsHot: true, Images: []string{"goods/images/nr_1.jpg", "goods/images/nr_2.jpg"}},
	{CategoryCode: "yr", GoodsSN: "MX-YR-0001", Name: "内蒙古羔羊肉卷 500g", MarketPrice: "88.00", ShopPrice: "68.00", GoodsNum: 300, Brief: "涮火锅首选", IsNew: true, Images: []string{"goods/images/yr_1.jpg"}},
	{CategoryCode: "xl", GoodsSN: "MX-XL-0001", Name: "厄瓜多尔白虾 2kg", MarketPrice: "159.00", ShopPrice: "129.90", GoodsNum: 80, Brief: "冰鲜速冻", IsHot: true, IsNew: true, Images: []string{"goods/images/xl_1.jpg", "goods/images/xl_2.jpg"}},
	{CategoryCode: "mt", GoodsSN: "MX-MT-0001", Name: "飞天茅台 53度 500ml", MarketPrice: "2999.00", ShopPrice: "2699.00", GoodsNum: 10, Brief: "酱香型白酒", Images: []string{"goods/images/mt_1.jpg"}},
	{CategoryCode: "gz", GoodsSN: "MX-GZ-0001", Name: "NFC 鲜榨橙汁 1L*6", MarketPrice: "99.00", ShopPrice: "79.00", GoodsNum: 200, Brief: "非浓缩还原", IsNew: true, Images: []string{"goods/images/gz_1.jpg"}},
	{CategoryCode: "gly", GoodsSN: "MX-GLY-0001", Name: "西班牙特级初榨橄榄油 1L", MarketPrice: "139.00", ShopPrice: "109.00", GoodsNum: 150, Brief: "冷榨工艺", Images: []string{"goods/images/gly_1.jpg"}},
}

func main() {
	var (
		configDir  string
		grantAdmin string
		skipData   bool
	)
	pflag.StringVar(&configDir, "config", "", "额外的配置目录")
	pflag.StringVar(&grantAdmin, "grant-catalog-admin", "", "授予指定用户名 catalog_admin 角色")
	pflag.BoolVar(&skipData, "skip-data", false, "只处理授权，不写入演示数据")
	pflag.Parse()

	var extra []string
	if strings.TrimSpace(configDir) != "" {
		extra = append(extra, configDir)
	}
	cfg := config.Load(extra...)
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, cfg.Log.SQLLevel); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	if !skipData {
		codes, err := seedCategories(models.DB, categoryTree)
		if err != nil {
			stdLog.Fatalf("写入分类失败: %v", err)
		}
		created, err := seedProducts(models.DB, codes, demoProducts)
		if err != nil {
			stdLog.Fatalf("写入商品失败: %v", err)
		}
		logger.Infow("seed_catalog_done", "categories", len(codes), "products_created", created)
	}

	if username := strings.TrimSpace(grantAdmin); username != "" {
		if err := grantCatalogAdmin(models.DB, username); err != nil {
			stdLog.Fatalf("授权失败: %v", err)
		}
		logger.Infow("seed_grant_catalog_admin", "username", username)
	}
}

// seedCategories 按 code 幂等写入分类树，返回 code -> id
func seedCategories(db *gorm.DB, tree []categorySeed) (map[string]uint, error) {
	codes := make(map[string]uint)
	var walk func(nodes []categorySeed, parentID *uint, level int) error
	walk = func(nodes []categorySeed, parentID *uint, level int) error {
		if level > models.MaxCategoryDepth {
			return fmt.Errorf("category tree deeper than %d", models.MaxCategoryDepth)
		}
		for _, node := range nodes {
			var existing models.Category
			err := db.Where("code = ? AND category_type = ?", node.Code, level).First(&existing).Error
			switch {
			case err == nil:
			case errors.Is(err, gorm.ErrRecordNotFound):
				existing = models.Category{
					Name:         node.Name,
					Code:         node.Code,
					Desc:         node.Desc,
					CategoryType: level,
					ParentID:     parentID,
					IsTab:        node.IsTab,
				}
				if err := db.Create(&existing).Error; err != nil {
					return fmt.Errorf("create category %s: %w", node.Code, err)
				}
			default:
				return err
			}
			codes[node.Code] = existing.ID
			id := existing.ID
			if err := walk(node.Children, &id, level+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(tree, nil, models.CategoryTypeLevel1); err != nil {
		return nil, err
	}
	return codes, nil
}

// seedProducts 按货号幂等写入演示商品，返回新建数量
func seedProducts(db *gorm.DB, codes map[string]uint, seeds []productSeed) (int, error) {
	created := 0
	for _, seed := range seeds {
		categoryID, ok := codes[seed.CategoryCode]
		if !ok {
			return created, fmt.Errorf("unknown category code %s", seed.CategoryCode)
		}
		var count int64
		if err := db.Model(&models.Product{}).Where("goods_sn = ?", seed.GoodsSN).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		product := models.Product{
			CategoryID:  categoryID,
			GoodsSN:     seed.GoodsSN,
			Name:        seed.Name,
			GoodsNum:    seed.GoodsNum,
			MarketPrice: models.NewMoneyFromDecimal(decimal.RequireFromString(seed.MarketPrice)),
			ShopPrice:   models.NewMoneyFromDecimal(decimal.RequireFromString(seed.ShopPrice)),
			GoodsBrief:  seed.Brief,
			ShipFree:    true,
			IsNew:       seed.IsNew,
			IsHot:       seed.IsHot,
		}
		if len(seed.Images) > 0 {
			product.GoodsFrontImage = seed.Images[0]
		}
		for _, image := range seed.Images {
			product.Images = append(product.Images, models.ProductImage{Image: image})
		}
		if err := db.Create(&product).Error; err != nil {
			return created, fmt.Errorf("create product %s: %w", seed.GoodsSN, err)
		}
		created++
	}
	return created, nil
}

func grantCatalogAdmin(db *gorm.DB, username string) error {
	user, err := repository.NewUserRepository(db).GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s not found", username)
	}
	authzService, err := authz.NewService(db)
	if err != nil {
		return err
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		return err
	}
	return authzService.AssignUserRole(user.ID, constants.RoleCatalogAdmin)
}
