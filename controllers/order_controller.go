package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hikegear/storefront/middleware"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Checkout submits the current cart as a new pending order.
func (oc *OrderController) Checkout(c *gin.Context) {
	user, err := middleware.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	order, svcErr := oc.orders.Checkout(c.Request.Context(), user, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order, "message": "Order placed successfully! We will process it soon."})
}

// GetOrders returns the authenticated user's order history.
func (oc *OrderController) GetOrders(c *gin.Context) {
	user, err := middleware.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, svcErr := oc.orders.ListUserOrders(c.Request.Context(), user.ID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetAllOrders returns every order in the ledger (admin only).
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, svcErr := oc.orders.ListAllOrders(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus assigns a new status to an order (admin only).
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	order, svcErr := oc.orders.UpdateStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetStats returns the admin dashboard summary.
func (oc *OrderController) GetStats(c *gin.Context) {
	stats, svcErr := oc.orders.Stats(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, stats)
}
