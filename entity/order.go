package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// orderTransitions is the booking lifecycle. CANCELLED is reachable from any
// non-terminal state; COMPLETED and CANCELLED absorb.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderCompleted, OrderCancelled},
	OrderCompleted: {},
	OrderCancelled: {},
}

// paymentTransitions is independent of the booking axis: COMPLETED does not
// require PAID and nothing couples the two fields.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid, PaymentFailed},
	PaymentPaid:     {PaymentRefunded},
	PaymentFailed:   {},
	PaymentRefunded: {},
}

func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[OrderStatus(s)]
	return ok
}

func ValidPaymentStatus(s string) bool {
	_, ok := paymentTransitions[PaymentStatus(s)]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, t := range paymentTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Order is one pre-booking. Created only via the booking flow, mutated only
// through status/paymentStatus updates, never deleted (cancellation is a
// status value).
type Order struct {
	gorm.Model
	OrderNumber   string        `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Status        OrderStatus   `gorm:"not null;default:PENDING" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:PENDING" json:"paymentStatus"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	PlatformFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"platformFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	BookingDateTime time.Time `gorm:"not null" json:"bookingDateTime"`
	Guests          int       `gorm:"not null;default:1" json:"guests"`
	SpecialRequests string    `json:"specialRequests,omitempty"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"orderItems,omitempty"`
}
