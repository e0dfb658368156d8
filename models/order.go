package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order. The UI only ever offers
// forward transitions, but the update handler accepts any valid value.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentBankTransfer   PaymentMethod = "Bank Transfer"
	PaymentJazzCash       PaymentMethod = "JazzCash"
	PaymentEasyPaisa      PaymentMethod = "EasyPaisa"
)

// ValidStatus reports whether s is one of the five known order states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the four accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCashOnDelivery, PaymentBankTransfer, PaymentJazzCash, PaymentEasyPaisa:
		return true
	}
	return false
}

// OrderItem is a line item snapshot. Product name is stored as a plain
// string, not a reference, so deleting a product never touches old orders.
type OrderItem struct {
	ProductName string  `bson:"productName" json:"productName"`
	Size        string  `bson:"size" json:"size"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	CustomerPhone   string             `bson:"customerPhone" json:"customerPhone"`
	CustomerEmail   string             `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	DeliveryAddress string             `bson:"deliveryAddress" json:"deliveryAddress"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	Status          OrderStatus        `bson:"status" json:"status"`
	PaymentMethod   PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
	DeliveryDate    *time.Time         `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
