package models

import "gorm.io/gorm"

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodUPI      PaymentMethod = "UPI"
	PaymentMethodRazorpay PaymentMethod = "RAZORPAY"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Address is the delivery address captured on the order itself, not a
// reference to a saved address, so later edits never rewrite history.
type Address struct {
	FullName  string `json:"fullName"`
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Country   string `json:"country"`
}

type Order struct {
	gorm.Model
	OrderID       string        `json:"orderId" gorm:"uniqueIndex;size:32"`
	UserID        int           `json:"userId" gorm:"index"`
	Items         []OrderItem   `json:"items" gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod" gorm:"type:varchar(16);default:'CASH'"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:varchar(16);default:'pending'"`
	OrderStatus   OrderStatus   `json:"orderStatus" gorm:"type:varchar(16);default:'pending'"`
	Address       Address       `json:"address" gorm:"embedded;embeddedPrefix:address_"`

	// Gateway correlation fields, populated only for RAZORPAY orders.
	RazorpayOrderID   string `json:"razorpayOrderId" gorm:"size:64"`
	RazorpayPaymentID string `json:"razorpayPaymentId" gorm:"index;size:64"`
	RazorpaySignature string `json:"razorpaySignature" gorm:"size:128"`

	SeenByAdmin bool   `json:"seenByAdmin" gorm:"default:false"`
	Notes       string `json:"notes"`
}

type OrderItem struct {
	gorm.Model
	OrderRef    int     `json:"-" gorm:"index"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
}
