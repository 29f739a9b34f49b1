package entity

import (
	"gorm.io/gorm"
)

// FavoriteRestaurant: at most one per (user, restaurant).
type FavoriteRestaurant struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant" json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant,omitempty"`
}
