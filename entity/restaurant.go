package entity

import (
	"gorm.io/gorm"
)

// Restaurant is both a venue listing and a login account.
type Restaurant struct {
	gorm.Model
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	Password      string  `json:"-"`
	Name          string  `gorm:"not null" json:"name"`
	Phone         string  `json:"phone"`
	Description   string  `json:"description,omitempty"`
	Cuisine       string  `json:"cuisine,omitempty"`
	Address       string  `json:"address,omitempty"`
	Image         string  `json:"image,omitempty"`
	Rating        float64 `gorm:"not null;default:0" json:"rating"`
	EstimatedTime string  `json:"estimatedTime,omitempty"`
	IsOpen        bool    `gorm:"not null;default:true" json:"isOpen"`
	Featured      bool    `gorm:"not null;default:false" json:"featured"`

	Categories    []Category     `json:"categories,omitempty"`
	BusinessHours []BusinessHour `json:"businessHours,omitempty"`
	Orders        []Order        `json:"-"`
	Reviews       []Review       `json:"-"`
}
