package entity

import (
	"gorm.io/gorm"
)

// Category groups menu items within one restaurant's menu.
type Category struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	MenuItems []MenuItem `json:"menuItems,omitempty"`
}
