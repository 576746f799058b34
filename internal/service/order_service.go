package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/logger"
	"github.com/mxshop-next/internal/metrics"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultOrderNoMaxRetries = 5

// OrderService 订单
type OrderService struct {
	orderRepo  repository.OrderRepository
	cartRepo   repository.CartRepository
	maxRetries int
	mobile     *MobilePattern
	orderSN    func(userID uint, now time.Time) string
	now        func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(cfg *config.Config, orderRepo repository.OrderRepository, cartRepo repository.CartRepository) *OrderService {
	maxRetries := cfg.Order.OrderNoMaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultOrderNoMaxRetries
	}
	return &OrderService{
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		maxRetries: maxRetries,
		mobile:     NewMobilePattern(cfg.VerifyCode.MobilePattern),
		orderSN:    generateOrderSN,
		now:        time.Now,
	}
}

// PlaceOrderInput 下单时客户端可填写的收货信息
type PlaceOrderInput struct {
	PostScript   string
	Address      string
	SignerName   string
	SignerMobile string
}

// generateOrderSN 当前时间 + 用户 ID + 两位随机数
func generateOrderSN(userID uint, now time.Time) string {
	return fmt.Sprintf("%s%d%d", now.Format("20060102150405"), userID, rand.IntN(90)+10)
}

// PlaceOrder 将购物车结算为订单：锁定购物车、计算金额、写入订单与订单项并清空购物车
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, input PlaceOrderInput) (*models.Order, error) {
	input.Address = strings.TrimSpace(input.Address)
	input.SignerName = strings.TrimSpace(input.SignerName)
	input.SignerMobile = strings.TrimSpace(input.SignerMobile)
	if input.Address == "" {
		return nil, fieldError("address", ErrAddressInvalid)
	}
	if input.SignerName == "" {
		return nil, fieldError("signer_name", ErrAddressInvalid)
	}
	if !s.mobile.Match(input.SignerMobile) {
		return nil, fieldError("signer_mobile", ErrInvalidMobile)
	}

	var order *models.Order
	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		entries, err := cartRepo.ListByUserForUpdate(userID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return ErrCartEmpty
		}

		amount := models.NewMoneyFromDecimal(decimal.Zero)
		items := make([]models.OrderItem, 0, len(entries))
		for _, entry := range entries {
			if entry.Product == nil {
				return ErrProductNotFound
			}
			amount = amount.Plus(entry.Product.ShopPrice.Mul(entry.Nums))
			items = append(items, models.OrderItem{
				ProductID: entry.ProductID,
				GoodsNum:  entry.Nums,
			})
		}

		order = &models.Order{
			UserID:       userID,
			PayStatus:    models.PayStatusPaying,
			PostScript:   strings.TrimSpace(input.PostScript),
			OrderAmount:  amount,
			Address:      input.Address,
			SignerName:   input.SignerName,
			SignerMobile: input.SignerMobile,
		}
		if err := s.createWithUniqueSN(tx, orderRepo, order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := orderRepo.CreateItems(items); err != nil {
			return err
		}
		order.Items = items
		return cartRepo.ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	logger.Infow("order_placed", "order_id", order.ID, "order_sn", order.OrderSN, "user_id", userID, "amount", order.OrderAmount.String())
	return order, nil
}

// createWithUniqueSN 每次尝试前建立保存点，订单号冲突时回滚到保存点后换号重试
func (s *OrderService) createWithUniqueSN(tx *gorm.DB, orderRepo repository.OrderRepository, order *models.Order) error {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		savepoint := fmt.Sprintf("order_sn_%d", attempt)
		if err := tx.SavePoint(savepoint).Error; err != nil {
			return err
		}
		order.ID = 0
		order.OrderSN = s.orderSN(order.UserID, s.now())
		err := orderRepo.Create(order)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		logger.Warnw("order_sn_conflict", "order_sn", order.OrderSN, "attempt", attempt)
		if err := tx.RollbackTo(savepoint).Error; err != nil {
			return err
		}
	}
	return ErrOrderNoConflict
}

// List 用户订单列表
func (s *OrderService) List(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// Get 用户订单详情
func (s *OrderService) Get(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Delete 删除订单及订单项
func (s *OrderService) Delete(userID, orderID uint) error {
	var deleted bool
	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = s.orderRepo.WithTx(tx).DeleteByIDAndUser(orderID, userID)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	logger.Infow("order_deleted", "order_id", orderID, "user_id", userID)
	return nil
}
