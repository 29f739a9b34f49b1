package entity

import (
	"gorm.io/gorm"
)

// BusinessHour is one weekday row of a restaurant's opening schedule.
// DayOfWeek: 0 = Sunday.
type BusinessHour struct {
	gorm.Model
	DayOfWeek int    `gorm:"not null" json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsClosed  bool   `gorm:"not null;default:false" json:"isClosed"`

	RestaurantID uint `gorm:"index" json:"restaurantId"`
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (b BusinessHour) DayName() string {
	if b.DayOfWeek < 0 || b.DayOfWeek > 6 {
		return ""
	}
	return dayNames[b.DayOfWeek]
}
