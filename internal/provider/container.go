package provider

import (
	"github.com/mxshop-next/internal/authz"
	"github.com/mxshop-next/internal/cache"
	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
	"github.com/mxshop-next/internal/service"
	"github.com/mxshop-next/internal/sms"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	UserRepo       repository.UserRepository
	VerifyCodeRepo repository.VerifyCodeRepository
	CategoryRepo   repository.CategoryRepository
	ProductRepo    repository.ProductRepository
	CartRepo       repository.CartRepository
	OrderRepo      repository.OrderRepository
	FavoriteRepo   repository.FavoriteRepository
	MessageRepo    repository.MessageRepository
	AddressRepo    repository.AddressRepository

	// Infrastructure
	SMSSender sms.Sender

	// Services
	AuthzService      *authz.Service
	VerifyCodeService *service.VerifyCodeService
	AccountService    *service.AccountService
	CaptchaService    *service.CaptchaService
	CatalogService    *service.CatalogService
	CartService       *service.CartService
	OrderService      *service.OrderService
	FavoriteService   *service.FavoriteService
	MessageService    *service.MessageService
	AddressService    *service.AddressService
}

// NewContainer 使用全局数据库连接初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存（限流使用）
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := c.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.VerifyCodeRepo = repository.NewVerifyCodeRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
	c.MessageRepo = repository.NewMessageRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	sender, err := sms.New(c.Config.SMS)
	if err != nil {
		logger.Errorw("provider_init_sms_sender_failed", "provider", c.Config.SMS.Provider, "error", err)
		panic(err)
	}
	c.SMSSender = sender

	c.VerifyCodeService = service.NewVerifyCodeService(c.Config, c.UserRepo, c.VerifyCodeRepo, c.SMSSender)
	c.AccountService = service.NewAccountService(c.Config, c.UserRepo, c.VerifyCodeService, c.AuthzService)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.CartRepo)
	c.FavoriteService = service.NewFavoriteService(c.FavoriteRepo, c.ProductRepo)
	c.MessageService = service.NewMessageService(c.MessageRepo)
	c.AddressService = service.NewAddressService(c.Config, c.AddressRepo)
}
