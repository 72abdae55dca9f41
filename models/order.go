package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

const (
	PaymentBankTransfer   = "bank-transfer"
	PaymentCashOnDelivery = "cash-on-delivery"
)

type ShippingInfo struct {
	FullName string `json:"full_name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	ZipCode  string `json:"zip_code" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// Order is an immutable snapshot of a checkout submission. Items and Total
// are frozen at creation time; only Status may change afterwards, and orders
// are never deleted from the ledger.
type Order struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Items           []CartItem   `json:"items"`
	Total           float64      `json:"total"`
	PaymentMethod   string       `json:"payment_method"`
	Shipping        ShippingInfo `json:"shipping"`
	TransferReceipt string       `json:"transfer_receipt,omitempty"`
	Status          OrderStatus  `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
}
