package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	// Price is the live menu price; order items copy it at creation time.
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"originalPrice,omitempty"`
	Discount      decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:0" json:"discount"`

	Image       string `json:"image,omitempty"`
	IsAvailable bool   `gorm:"not null;default:true" json:"isAvailable"`
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`
	Allergens   string `json:"allergens,omitempty"` // comma-separated
	Nutrition   string `json:"nutrition,omitempty"` // JSON facts blob

	CategoryID uint     `gorm:"index" json:"categoryId"`
	Category   Category `json:"-"`
}
