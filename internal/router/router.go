package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/mxshop-next/internal/authz"
	"github.com/mxshop-next/internal/cache"
	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/constants"
	publichandlers "github.com/mxshop-next/internal/http/handlers/public"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/metrics"
	"github.com/mxshop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	h := publichandlers.New(c)
	redisClient := cache.Client()
	loginRule := NewRateLimitRule(cache.Key("rate", "login"), cfg.Security.LoginRateLimit, "error.login_too_many")
	smsRule := NewRateLimitRule(cache.Key("rate", "sms"), cfg.Security.SMSRateLimit, "error.sms_too_many")

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(metrics.Handler())
	}

	// API 路由组：所有接口先识别身份（可匿名），再按路由模板做 RBAC
	apiV1 := r.Group("/api/v1")
	apiV1.Use(UserAuthMiddleware(c.AccountService, c.UserRepo, cfg.Session.CookieName, false))
	apiV1.Use(UserRBACMiddleware(c.AuthzService))
	{
		// 商品目录
		apiV1.GET("/goods", h.ListProducts)
		apiV1.POST("/goods", h.CreateProduct)
		apiV1.GET("/goods/:id", h.GetProduct)
		apiV1.GET("/categorys", h.ListCategories)
		apiV1.GET("/categorys/:id", h.GetCategory)

		// 账号
		apiV1.POST("/code", RateLimitMiddleware(redisClient, smsRule, KeyByIP), h.SendVerifyCode)
		apiV1.POST("/users", h.Register)
		apiV1.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), h.Login)
		apiV1.POST("/login/refresh", h.RefreshToken)
		apiV1.POST("/logout", h.Logout)
		apiV1.GET("/captcha/image", h.GetImageCaptcha)
		apiV1.GET("/users/me", h.GetProfile)
		apiV1.PUT("/users/me", h.UpdateProfile)
		apiV1.PATCH("/users/me", h.UpdateProfile)

		// 购物车
		apiV1.GET("/shopcarts", h.ListCart)
		apiV1.POST("/shopcarts", h.AddCartItem)
		apiV1.GET("/shopcarts/:product_id", h.GetCartItem)
		apiV1.PUT("/shopcarts/:product_id", h.UpdateCartItem)
		apiV1.PATCH("/shopcarts/:product_id", h.UpdateCartItem)
		apiV1.DELETE("/shopcarts/:product_id", h.DeleteCartItem)

		// 订单
		apiV1.GET("/orders", h.ListOrders)
		apiV1.POST("/orders", h.PlaceOrder)
		apiV1.GET("/orders/:id", h.GetOrder)
		apiV1.DELETE("/orders/:id", h.DeleteOrder)

		// 收藏
		apiV1.GET("/userfavs", h.ListFavorites)
		apiV1.POST("/userfavs", h.AddFavorite)
		apiV1.GET("/userfavs/:product_id", h.GetFavorite)
		apiV1.DELETE("/userfavs/:product_id", h.DeleteFavorite)

		// 留言
		apiV1.GET("/messages", h.ListMessages)
		apiV1.POST("/messages", h.CreateMessage)
		apiV1.DELETE("/messages/:id", h.DeleteMessage)

		// 收货地址
		apiV1.GET("/address", h.ListAddresses)
		apiV1.POST("/address", h.CreateAddress)
		apiV1.PUT("/address/:id", h.UpdateAddress)
		apiV1.PATCH("/address/:id", h.UpdateAddress)
		apiV1.DELETE("/address/:id", h.DeleteAddress)
	}

	// 健康检查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, metrics.Exposer())
	}

	for _, item := range uncoveredRoutes(buildRoutePermissionCatalog(r), c.AuthzService) {
		logger.Warnw("route_without_policy", "method", item.Method, "object", item.Object)
	}

	return r
}

type routePermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildRoutePermissionCatalog 列出 /api/v1 下的全部路由权限点
func buildRoutePermissionCatalog(engine *gin.Engine) []routePermissionCatalogItem {
	if engine == nil {
		return []routePermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]routePermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == http.MethodOptions || method == http.MethodHead {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/") {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, routePermissionCatalogItem{
			Module:     deriveRoutePermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveRoutePermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	return strings.Split(normalized, "/")[0]
}

// uncoveredRoutes 返回权限最高的预置角色也无法访问的路由，这类路由对所有人都会被拒绝
func uncoveredRoutes(items []routePermissionCatalogItem, authzService *authz.Service) []routePermissionCatalogItem {
	if authzService == nil {
		return nil
	}
	subject, err := authz.NormalizeRole(constants.RoleCatalogAdmin)
	if err != nil {
		return nil
	}
	var missing []routePermissionCatalogItem
	for _, item := range items {
		allowed, err := authzService.Enforce(subject, item.Object, item.Method)
		if err != nil || !allowed {
			missing = append(missing, item)
		}
	}
	return missing
}
