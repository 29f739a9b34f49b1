package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots Price and Discount from the menu item at order time.
// Later menu price changes never retroactively affect existing orders.
type OrderItem struct {
	gorm.Model
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount"`
	Notes    string          `json:"notes,omitempty"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem,omitempty"`
}
