package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "PENDING"    // Order placed, awaiting confirmation
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"  // Confirmed by the shop
	OrderStatusProcessing OrderStatus = "PROCESSING" // Being packed
	OrderStatusShipped    OrderStatus = "SHIPPED"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "CANCELLED"  // Cancelled before shipping
	OrderStatusRefunded   OrderStatus = "REFUNDED"   // Money returned after delivery

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "PENDING"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "PAID"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "FAILED"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "REFUNDED" // Money returned to customer
)

// Address is embedded twice in Order (billing_ and shipping_ column prefixes).
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderNumber     string        `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerName    string        `gorm:"not null" json:"customer_name"`
	CustomerEmail   string        `gorm:"index" json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"payment_status"`
	PaymentMethod   string        `json:"payment_method"`  // e.g. "cod"
	DeliveryMethod  string        `json:"delivery_method"` // "standard" or "express"
	Subtotal        float64       `json:"subtotal"`
	ShippingAmount  float64       `json:"shipping_amount"`
	TotalAmount     float64       `json:"total_amount"` // subtotal + shipping, no tax
	BillingAddress  Address       `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	ShippingAddress Address       `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Notes           string        `json:"notes"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem snapshots the product at order time; it is never live-linked to
// the product row and never mutated after creation.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}
