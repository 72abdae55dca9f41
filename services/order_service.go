package services

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/hikegear/storefront/common/errors"
	"github.com/hikegear/storefront/common/logger"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/repository"
)

type CheckoutRequest struct {
	PaymentMethod   string              `json:"payment_method" binding:"required,oneof=bank-transfer cash-on-delivery"`
	Shipping        models.ShippingInfo `json:"shipping" binding:"required"`
	TransferReceipt string              `json:"transfer_receipt"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Revenue       float64 `json:"revenue"`
	PendingOrders int     `json:"pending_orders"`
	TotalOrders   int     `json:"total_orders"`
}

type OrderService struct {
	orders repository.OrderRepository
	carts  *CartService
}

func NewOrderService(orders repository.OrderRepository, carts *CartService) *OrderService {
	return &OrderService{orders: orders, carts: carts}
}

// Checkout turns the user's cart into a pending order and clears the cart.
// The order snapshots the cart items and total at submission time; later
// catalog edits never touch it. There is no resubmission guard: checking out
// twice with an identical cart creates two independent orders.
func (s *OrderService) Checkout(ctx context.Context, user models.User, req *CheckoutRequest) (*models.Order, *ServiceError) {
	if user.Role != models.RoleCustomer {
		return nil, fromAppError(apperrors.ErrCheckoutForbidden)
	}

	cart, svcErr := s.carts.Get(ctx, user.ID)
	if svcErr != nil {
		return nil, svcErr
	}
	if len(cart.Items) == 0 {
		return nil, fromAppError(apperrors.ErrEmptyCart)
	}

	// Bank transfer is only accepted with a receipt reference; the check runs
	// before any order exists.
	if req.PaymentMethod == models.PaymentBankTransfer && req.TransferReceipt == "" {
		return nil, fromAppError(apperrors.ErrReceiptRequired)
	}

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := models.Order{
		ID:              strconv.FormatInt(time.Now().UnixMilli(), 10),
		UserID:          user.ID,
		Items:           items,
		Total:           cart.TotalPrice,
		PaymentMethod:   req.PaymentMethod,
		Shipping:        req.Shipping,
		TransferReceipt: req.TransferReceipt,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		logger.Error(ctx, "Failed to create order", err, zap.String("user_id", user.ID))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	if svcErr := s.carts.Clear(ctx, user.ID); svcErr != nil {
		logger.Warn(ctx, "Failed to clear cart after checkout", zap.String("user_id", user.ID))
	}

	logger.Info(ctx, "Order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", user.ID),
		zap.Float64("total", order.Total),
	)
	return &order, nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, nil
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, nil
}

// UpdateStatus assigns a new status to an order. Any of the four known
// statuses may be assigned directly; only unknown values are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, *ServiceError) {
	if !models.ValidStatus(status) {
		return nil, fromAppError(apperrors.ErrInvalidStatus)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if err == repository.ErrNotFound {
			return nil, fromAppError(apperrors.ErrOrderNotFound)
		}
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}
	return order, nil
}

// Stats recomputes revenue and counts from the current ledger. Revenue sums
// the totals of completed orders only.
func (s *OrderService) Stats(ctx context.Context) (*Stats, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}

	stats := &Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusCompleted:
			stats.Revenue += o.Total
		case models.OrderStatusPending:
			stats.PendingOrders++
		}
	}
	return stats, nil
}
