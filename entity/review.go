package entity

import (
	"gorm.io/gorm"
)

// Review: at most one per (user, restaurant); the composite unique index
// resolves concurrent creates deterministically.
type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment,omitempty"`

	UserID uint `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderID *uint `json:"orderId,omitempty"`
}
