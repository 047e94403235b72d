package models

import (
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Confirmed by seller
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusReturned    OrderStatus = "returned"      // Customer returned the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

// ParseOrderStatus maps a case-insensitive string to a known OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusReadyToShip, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusReturned, OrderStatusCancelled:
		return st, nil
	}
	return "", NewValidationError("status", "unknown order status")
}

// ParsePaymentStatus maps a case-insensitive string to a known PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return st, nil
	}
	return "", NewValidationError("payment_status", "unknown payment status")
}

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID        string        `gorm:"index;not null" json:"user_id"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	ShippingCost  float64       `json:"shipping_cost"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // e.g. "card", "cod"
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderItem keeps both language names so past orders render in either.
type OrderItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OrderID        uint    `gorm:"index" json:"order_id"`
	ProductID      string  `gorm:"size:24;index" json:"product_id"`
	VariantID      string  `gorm:"size:24" json:"variant_id,omitempty"`
	ProductEName   string  `json:"product_ename"`
	ProductArName  string  `json:"product_arname"`
	ProductImage   string  `json:"product_image"`
	VariantDetails string  `json:"variant_details"`
	OriginalPrice  float64 `json:"original_price"`
	FinalPrice     float64 `json:"final_price"`
	Weight         float64 `json:"weight"`
	Quantity       int     `json:"quantity"`
}
