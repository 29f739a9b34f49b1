package entity

import (
	"gorm.io/gorm"
)

// User is a diner account. Shares the email namespace with Restaurant:
// registration checks both tables before insert.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`

	Orders    []Order              `json:"-"`
	Reviews   []Review             `json:"-"`
	Favorites []FavoriteRestaurant `json:"-"`
}
