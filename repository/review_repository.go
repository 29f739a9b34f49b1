package repository

import (
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

type ReviewFilter struct {
	RestaurantID *uint
	Page         int
	Limit        int
}

// Create relies on the (user, restaurant) unique index: a concurrent
// duplicate fails with gorm.ErrDuplicatedKey instead of inserting twice.
func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ExistsFor(userID, restaurantID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&n).Error
	return n > 0, err
}

func (r *ReviewRepository) List(f ReviewFilter) ([]entity.Review, int64, error) {
	q := r.DB.Model(&entity.Review{})
	if f.RestaurantID != nil {
		q = q.Where("restaurant_id = ?", *f.RestaurantID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Review
	err := q.Preload("User").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&out).Error
	return out, total, err
}
